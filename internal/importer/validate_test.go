package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fieldsFor(email, date, start, end, role, department string) map[LogicalField]string {
	return map[LogicalField]string{
		FieldEmail:      email,
		FieldDate:       date,
		FieldStartTime:  start,
		FieldEndTime:    end,
		FieldRole:       role,
		FieldDepartment: department,
	}
}

func TestValidateRowCanonicalizes(t *testing.T) {
	row, reasons := ValidateRow(fieldsFor("a@b.com", "3/15/2024", "8:00 AM", "5:00 PM", " Nurse ", " ER "), 3)

	require.Empty(t, reasons)
	require.Equal(t, 3, row.RowNumber)
	require.Equal(t, "2024-03-15", row.Date)
	require.Equal(t, "08:00", row.StartTime)
	require.Equal(t, "17:00", row.EndTime)
	require.Equal(t, "Nurse", row.Role)
	require.Equal(t, "ER", row.Department)
}

func TestValidateRowBadEmailShortCircuits(t *testing.T) {
	row, reasons := ValidateRow(fieldsFor("not-an-email", "bogus", "bogus", "bogus", "", ""), 1)

	require.Nil(t, row)
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0], "email")
}

func TestValidateRowCollectsBothBadTimes(t *testing.T) {
	row, reasons := ValidateRow(fieldsFor("a@b.com", "2024-03-15", "25:00", "9pm", "Nurse", "ER"), 1)

	require.Nil(t, row)
	require.Len(t, reasons, 2)
	require.Contains(t, reasons[0], "start time")
	require.Contains(t, reasons[1], "end time")
}

func TestValidateRowRejectsMidnightCrossing(t *testing.T) {
	row, reasons := ValidateRow(fieldsFor("a@b.com", "2024-03-15", "17:00", "09:00", "Nurse", "ER"), 1)

	require.Nil(t, row)
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0], "before end time")
}

func TestValidateRowRejectsZeroLengthShift(t *testing.T) {
	row, _ := ValidateRow(fieldsFor("a@b.com", "2024-03-15", "09:00", "09:00", "Nurse", "ER"), 1)
	require.Nil(t, row)
}

func TestValidateRowCollectsEmptyRoleAndDepartment(t *testing.T) {
	row, reasons := ValidateRow(fieldsFor("a@b.com", "2024-03-15", "09:00", "17:00", "  ", ""), 1)

	require.Nil(t, row)
	require.Len(t, reasons, 2)
	require.Contains(t, reasons[0], "role")
	require.Contains(t, reasons[1], "department")
}

func TestValidateRowMissingFields(t *testing.T) {
	row, reasons := ValidateRow(map[LogicalField]string{}, 1)

	require.Nil(t, row)
	require.NotEmpty(t, reasons)
}
