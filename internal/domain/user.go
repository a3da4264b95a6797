package domain

import "time"

// UserRole enumerates access levels for scheduling.
type UserRole string

const (
	UserRoleStaff   UserRole = "STAFF"
	UserRoleManager UserRole = "MANAGER"
	UserRoleAdmin   UserRole = "ADMIN"
)

// CanManageSchedule reports whether the role may create shifts or run imports.
func (r UserRole) CanManageSchedule() bool {
	return r == UserRoleManager || r == UserRoleAdmin
}

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is the domain model for every account: staff being scheduled,
// managers building schedules, and admins.
type User struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
	PasswordHash   string
	Role           UserRole
	Status         UserStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
