package importer

import "github.com/spec-kit/shift-service/internal/domain"

// HasOverlap reports whether the candidate window intersects any of
// the given same-day shifts. Intervals are half-open, so a shift
// ending exactly when another starts does not conflict.
func HasOverlap(candidate *ShiftRow, existing []domain.Shift) bool {
	window := domain.Shift{
		Date:      candidate.Date,
		StartTime: candidate.StartTime,
		EndTime:   candidate.EndTime,
	}
	for _, shift := range existing {
		if shift.Overlaps(window) {
			return true
		}
	}
	return false
}
