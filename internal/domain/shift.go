package domain

import "time"

// Shift is one scheduled block of work for a user.
//
// Date and the two times are stored in their canonical string forms
// (YYYY-MM-DD and 24-hour HH:MM) so that lexicographic comparison is
// chronological comparison; shifts never cross midnight.
type Shift struct {
	ID             string
	OrganizationID string
	UserID         string
	Date           string
	StartTime      string
	EndTime        string
	Role           string
	Department     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Overlaps reports whether two same-day shifts have a positive-width
// intersection. Touching endpoints (one ends exactly when the other
// starts) do not overlap.
func (s Shift) Overlaps(other Shift) bool {
	if s.Date != other.Date {
		return false
	}
	return s.StartTime < other.EndTime && s.EndTime > other.StartTime
}
