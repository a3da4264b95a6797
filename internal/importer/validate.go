package importer

import (
	"fmt"
	"strings"
)

// ShiftRow is one candidate shift with every field in canonical form.
// It is only constructed once all validation classes pass.
type ShiftRow struct {
	RowNumber  int
	Email      string
	Date       string
	StartTime  string
	EndTime    string
	Role       string
	Department string
}

// ValidateRow checks a resolved row and either returns a canonical
// ShiftRow or the reasons it was rejected.
//
// Checks run in classes: email syntax, date, times, time ordering,
// then required text fields. The first failing class stops the walk,
// but every issue inside that class is collected, so a row with two
// bad times reports both.
func ValidateRow(fields map[LogicalField]string, rowNumber int) (*ShiftRow, []string) {
	email := strings.TrimSpace(fields[FieldEmail])
	if !validEmail(email) {
		return nil, []string{fmt.Sprintf("invalid email address %q", email)}
	}

	date, ok := NormalizeDate(fields[FieldDate])
	if !ok {
		return nil, []string{fmt.Sprintf("unrecognized date %q", strings.TrimSpace(fields[FieldDate]))}
	}

	var reasons []string
	start, ok := NormalizeTime(fields[FieldStartTime])
	if !ok {
		reasons = append(reasons, fmt.Sprintf("unrecognized start time %q", strings.TrimSpace(fields[FieldStartTime])))
	}
	end, ok := NormalizeTime(fields[FieldEndTime])
	if !ok {
		reasons = append(reasons, fmt.Sprintf("unrecognized end time %q", strings.TrimSpace(fields[FieldEndTime])))
	}
	if len(reasons) > 0 {
		return nil, reasons
	}

	// Canonical HH:MM strings compare chronologically; a start at or
	// after the end also covers midnight-crossing shifts, which are
	// not representable.
	if start >= end {
		return nil, []string{fmt.Sprintf("start time %s must be before end time %s", start, end)}
	}

	role := strings.TrimSpace(fields[FieldRole])
	department := strings.TrimSpace(fields[FieldDepartment])
	if role == "" {
		reasons = append(reasons, "role is required")
	}
	if department == "" {
		reasons = append(reasons, "department is required")
	}
	if len(reasons) > 0 {
		return nil, reasons
	}

	return &ShiftRow{
		RowNumber:  rowNumber,
		Email:      email,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Role:       role,
		Department: department,
	}, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
