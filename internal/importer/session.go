package importer

import "time"

// Session holds a parsed upload between the interactive mapping round
// and the commit round. Sessions live in Redis with a TTL; nothing is
// written to the schedule until commit.
type Session struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	FileName       string        `json:"file_name,omitempty"`
	Headers        []string      `json:"headers"`
	Rows           [][]string    `json:"rows"`
	Mapping        ColumnMapping `json:"mapping"`
	CreatedAt      time.Time     `json:"created_at"`
}

// NeedsMapping reports whether the operator still has to correct the
// column mapping before the batch can be committed.
func (s *Session) NeedsMapping() bool {
	return !s.Mapping.Complete()
}
