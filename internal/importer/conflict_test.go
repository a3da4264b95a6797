package importer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-service/internal/domain"
)

func window(start, end string) domain.Shift {
	return domain.Shift{Date: "2024-03-15", StartTime: start, EndTime: end}
}

func TestHasOverlap(t *testing.T) {
	candidate := &ShiftRow{Date: "2024-03-15", StartTime: "09:00", EndTime: "17:00"}

	require.False(t, HasOverlap(candidate, nil))
	require.False(t, HasOverlap(candidate, []domain.Shift{window("17:00", "22:00")}), "touching end")
	require.False(t, HasOverlap(candidate, []domain.Shift{window("06:00", "09:00")}), "touching start")
	require.True(t, HasOverlap(candidate, []domain.Shift{window("16:59", "18:00")}))
	require.True(t, HasOverlap(candidate, []domain.Shift{window("08:00", "09:01")}))
	require.True(t, HasOverlap(candidate, []domain.Shift{window("10:00", "11:00")}), "contained")
	require.True(t, HasOverlap(candidate, []domain.Shift{window("00:00", "23:00")}), "containing")
}
