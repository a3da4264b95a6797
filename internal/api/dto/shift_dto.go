package dto

import (
	"time"

	"github.com/spec-kit/shift-service/internal/domain"
)

// CreateShiftRequest payload.
type CreateShiftRequest struct {
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// ShiftResponse represents one scheduled shift.
type ShiftResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewShiftResponse maps the domain model.
func NewShiftResponse(shift *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ID:         shift.ID,
		UserID:     shift.UserID,
		Date:       shift.Date,
		StartTime:  shift.StartTime,
		EndTime:    shift.EndTime,
		Role:       shift.Role,
		Department: shift.Department,
		CreatedAt:  shift.CreatedAt,
		UpdatedAt:  shift.UpdatedAt,
	}
}
