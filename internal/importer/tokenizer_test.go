package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderAndRow(t *testing.T) {
	text := "date,start_time,end_time,role,location,email\n" +
		"2024-03-15,09:00,17:00,Nurse,Downtown Clinic,test@example.com"

	headers, rows := Parse(text)

	require.Equal(t, []string{"date", "start_time", "end_time", "role", "location", "email"}, headers)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"2024-03-15", "09:00", "17:00", "Nurse", "Downtown Clinic", "test@example.com"}, rows[0])
}

func TestParseQuotedFields(t *testing.T) {
	headers, rows := Parse("name,notes\n\"Smith, Jane\",\"said \"\"hi\"\"\"\n")

	require.Equal(t, []string{"name", "notes"}, headers)
	require.Len(t, rows, 1)
	require.Equal(t, "Smith, Jane", rows[0][0])
	require.Equal(t, `said "hi"`, rows[0][1])
}

func TestParseDropsBlankLines(t *testing.T) {
	text := "\n\nemail,date\n\na@b.com,2024-01-01\n  \nb@c.com,2024-01-02\n\n"

	headers, rows := Parse(text)

	require.Equal(t, []string{"email", "date"}, headers)
	require.Len(t, rows, 2)
}

func TestParseCRLF(t *testing.T) {
	headers, rows := Parse("a,b\r\n1,2\r\n")

	require.Equal(t, []string{"a", "b"}, headers)
	require.Equal(t, [][]string{{"1", "2"}}, rows)
}

func TestParseEmptyInput(t *testing.T) {
	headers, rows := Parse("")
	require.Empty(t, headers)
	require.Empty(t, rows)

	headers, rows = Parse("\n \n\t\n")
	require.Empty(t, headers)
	require.Empty(t, rows)
}

func TestParseUnterminatedQuoteClosesAtEndOfLine(t *testing.T) {
	_, rows := Parse("a,b\n\"oops,1\nnext,2\n")

	require.Len(t, rows, 2)
	require.Equal(t, []string{"oops,1"}, rows[0])
	require.Equal(t, []string{"next", "2"}, rows[1])
}

func TestParseTrimsAfterUnquoting(t *testing.T) {
	_, rows := Parse("a\n  \"  padded  \"  \n")

	require.Equal(t, "padded", rows[0][0])
}

// With no quotes or embedded commas, Parse must agree with a naive
// newline-then-comma split.
func TestParseMatchesNaiveSplit(t *testing.T) {
	text := "x,y,z\n1,2,3\n4,5,6"

	headers, rows := Parse(text)

	lines := strings.Split(text, "\n")
	require.Equal(t, strings.Split(lines[0], ","), headers)
	for i, line := range lines[1:] {
		require.Equal(t, strings.Split(line, ","), rows[i])
	}
}

func TestParseHeaderOnly(t *testing.T) {
	headers, rows := Parse("email,date,start_time,end_time,role,department\n")

	require.Len(t, headers, 6)
	require.Empty(t, rows)
}
