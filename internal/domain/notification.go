package domain

import "time"

// NotificationKind enumerates in-app notification categories.
type NotificationKind string

const (
	NotificationShiftAssigned   NotificationKind = "SHIFT_ASSIGNED"
	NotificationShiftCancelled  NotificationKind = "SHIFT_CANCELLED"
	NotificationImportCompleted NotificationKind = "IMPORT_COMPLETED"
)

// Notification is one entry in a user's notification feed.
type Notification struct {
	ID        string
	UserID    string
	Kind      NotificationKind
	Message   string
	ReadAt    *time.Time
	CreatedAt time.Time
}
