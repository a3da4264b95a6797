package domain

import "time"

// Organization is the tenant boundary; every user and shift belongs to one.
type Organization struct {
	ID        string
	Name      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
