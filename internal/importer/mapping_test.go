package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutoMapSynonyms(t *testing.T) {
	headers := []string{"date", "start_time", "end_time", "role", "location", "email"}

	mapping := AutoMap(headers)

	require.Equal(t, FieldDate, mapping["date"])
	require.Equal(t, FieldStartTime, mapping["start_time"])
	require.Equal(t, FieldEndTime, mapping["end_time"])
	require.Equal(t, FieldRole, mapping["role"])
	require.Equal(t, FieldDepartment, mapping["location"])
	require.Equal(t, FieldEmail, mapping["email"])
	require.True(t, mapping.Complete())
}

func TestAutoMapIsCaseAndSpacingInsensitive(t *testing.T) {
	mapping := AutoMap([]string{"  Clock In ", "CLOCK_OUT", "Employee Email", "Shift Date", "Position", "Dept"})

	require.Equal(t, FieldStartTime, mapping["  Clock In "])
	require.Equal(t, FieldEndTime, mapping["CLOCK_OUT"])
	require.Equal(t, FieldEmail, mapping["Employee Email"])
	require.Equal(t, FieldDate, mapping["Shift Date"])
	require.Equal(t, FieldRole, mapping["Position"])
	require.Equal(t, FieldDepartment, mapping["Dept"])
}

func TestAutoMapLeavesUnknownHeadersUnmapped(t *testing.T) {
	mapping := AutoMap([]string{"email", "favorite_color"})

	require.Equal(t, FieldUnmapped, mapping["favorite_color"])
	require.False(t, mapping.Complete())
}

func TestMissingListsRequiredFieldsInOrder(t *testing.T) {
	mapping := AutoMap([]string{"email", "date"})

	require.Equal(t,
		[]LogicalField{FieldStartTime, FieldEndTime, FieldRole, FieldDepartment},
		mapping.Missing())
}

func TestResolveRowHidesColumnPositions(t *testing.T) {
	headers := []string{"location", "email", "date", "start", "end", "role"}
	mapping := AutoMap(headers)
	row := []string{"ER", "a@b.com", "2024-03-15", "09:00", "17:00", "Nurse"}

	fields := ResolveRow(headers, mapping, row)

	require.Equal(t, "a@b.com", fields[FieldEmail])
	require.Equal(t, "ER", fields[FieldDepartment])
	require.Equal(t, "09:00", fields[FieldStartTime])
}

func TestResolveRowFirstMappedColumnWins(t *testing.T) {
	headers := []string{"email", "mail"}
	mapping := AutoMap(headers)

	fields := ResolveRow(headers, mapping, []string{"first@x.com", "second@x.com"})

	require.Equal(t, "first@x.com", fields[FieldEmail])
}

func TestResolveRowToleratesShortRows(t *testing.T) {
	headers := []string{"email", "date"}
	mapping := AutoMap(headers)

	fields := ResolveRow(headers, mapping, []string{"a@b.com"})

	require.Equal(t, "a@b.com", fields[FieldEmail])
	_, present := fields[FieldDate]
	require.False(t, present)
}
