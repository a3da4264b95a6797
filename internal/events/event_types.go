package events

import (
	"time"

	"github.com/spec-kit/shift-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventShiftCreated    EventType = "shift_created"
	EventShiftDeleted    EventType = "shift_deleted"
	EventImportCompleted EventType = "import_completed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string          `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID             string      `json:"id"`
	Type           EventType   `json:"type"`
	OrganizationID string      `json:"organization_id"`
	Actor          Actor       `json:"actor"`
	Timestamp      time.Time   `json:"timestamp"`
	Payload        interface{} `json:"payload"`
}

// ShiftCreatedPayload payload.
type ShiftCreatedPayload struct {
	ShiftID    string `json:"shift_id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Source     string `json:"source"` // "manual" or "import"
}

// ShiftDeletedPayload payload.
type ShiftDeletedPayload struct {
	ShiftID string `json:"shift_id"`
	UserID  string `json:"user_id"`
	Date    string `json:"date"`
}

// ImportCompletedPayload payload.
type ImportCompletedPayload struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Failed  int `json:"failed"`
}
