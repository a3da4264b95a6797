package importer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/shift-service/internal/domain"
)

// UserDirectory resolves employee emails to identities.
type UserDirectory interface {
	FindByEmails(ctx context.Context, organizationID string, emails []string) ([]domain.User, error)
}

// ShiftStore is the persistence surface the importer needs.
type ShiftStore interface {
	ListForUserOnDate(ctx context.Context, userID, date string) ([]domain.Shift, error)
	Create(ctx context.Context, shift *domain.Shift) error
}

// Candidate is one import row with the raw email plus its field values
// as supplied by the caller; normalization runs inside the importer.
type Candidate struct {
	Email      string
	Date       string
	StartTime  string
	EndTime    string
	Role       string
	Department string
}

func (c Candidate) fields() map[LogicalField]string {
	return map[LogicalField]string{
		FieldEmail:      c.Email,
		FieldDate:       c.Date,
		FieldStartTime:  c.StartTime,
		FieldEndTime:    c.EndTime,
		FieldRole:       c.Role,
		FieldDepartment: c.Department,
	}
}

// RowOutcome is the per-row result of an import attempt. Exactly one
// outcome exists per input row, in input order.
type RowOutcome struct {
	Row     int      `json:"row"`
	Email   string   `json:"email,omitempty"`
	ShiftID string   `json:"shift_id,omitempty"`
	Created bool     `json:"created"`
	Reasons []string `json:"reasons,omitempty"`
}

// Result aggregates a whole batch.
type Result struct {
	Total    int          `json:"total"`
	Created  int          `json:"created"`
	Outcomes []RowOutcome `json:"results"`
}

// Service is the batch importer: it resolves identities once per
// batch, then validates, conflict-checks and commits each row
// independently so one bad row never aborts the rest.
type Service struct {
	users   UserDirectory
	shifts  ShiftStore
	logger  *zap.Logger
	maxRows int
}

// Dependencies bundles what the importer needs.
type Dependencies struct {
	Users   UserDirectory
	Shifts  ShiftStore
	Logger  *zap.Logger
	MaxRows int
}

// NewService constructs the batch importer.
func NewService(deps Dependencies) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:   deps.Users,
		shifts:  deps.Shifts,
		logger:  logger,
		maxRows: deps.MaxRows,
	}
}

// CandidatesFromRows projects tokenized rows through a complete
// column mapping into candidates, preserving row order.
func CandidatesFromRows(headers []string, mapping ColumnMapping, rows [][]string) []Candidate {
	candidates := make([]Candidate, 0, len(rows))
	for _, row := range rows {
		fields := ResolveRow(headers, mapping, row)
		candidates = append(candidates, Candidate{
			Email:      fields[FieldEmail],
			Date:       fields[FieldDate],
			StartTime:  fields[FieldStartTime],
			EndTime:    fields[FieldEndTime],
			Role:       fields[FieldRole],
			Department: fields[FieldDepartment],
		})
	}
	return candidates
}

// Import runs the batch in one sequential pass. Row numbers in the
// result are 1-based positions in the input, stable regardless of
// which rows succeed.
func (s *Service) Import(ctx context.Context, organizationID string, candidates []Candidate) (*Result, error) {
	if s.maxRows > 0 && len(candidates) > s.maxRows {
		return nil, fmt.Errorf("batch of %d rows exceeds limit of %d", len(candidates), s.maxRows)
	}

	usersByEmail, err := s.resolveUsers(ctx, organizationID, candidates)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Total:    len(candidates),
		Outcomes: make([]RowOutcome, 0, len(candidates)),
	}

	// Slots committed earlier in this pass, so two rows in the same
	// upload for the same employee and day are checked against each
	// other, not only against previously persisted data.
	committed := make(map[string][]domain.Shift)

	for i, candidate := range candidates {
		outcome := s.importRow(ctx, organizationID, i+1, candidate, usersByEmail, committed)
		if outcome.Created {
			result.Created++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.logger.Info("import batch finished",
		zap.String("organization_id", organizationID),
		zap.Int("total", result.Total),
		zap.Int("created", result.Created))
	return result, nil
}

func (s *Service) importRow(ctx context.Context, organizationID string, rowNumber int, candidate Candidate, usersByEmail map[string]domain.User, committed map[string][]domain.Shift) RowOutcome {
	email := strings.TrimSpace(candidate.Email)
	outcome := RowOutcome{Row: rowNumber, Email: email}

	user, found := usersByEmail[strings.ToLower(email)]
	if !found {
		outcome.Reasons = []string{"User not found: " + email}
		return outcome
	}

	row, reasons := ValidateRow(candidate.fields(), rowNumber)
	if len(reasons) > 0 {
		outcome.Reasons = reasons
		return outcome
	}

	slot := user.ID + "|" + row.Date
	existing, err := s.shifts.ListForUserOnDate(ctx, user.ID, row.Date)
	if err != nil {
		outcome.Reasons = []string{err.Error()}
		return outcome
	}
	if HasOverlap(row, existing) || HasOverlap(row, committed[slot]) {
		outcome.Reasons = []string{"overlaps with an existing shift"}
		return outcome
	}

	shift := &domain.Shift{
		OrganizationID: organizationID,
		UserID:         user.ID,
		Date:           row.Date,
		StartTime:      row.StartTime,
		EndTime:        row.EndTime,
		Role:           row.Role,
		Department:     row.Department,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		outcome.Reasons = []string{err.Error()}
		return outcome
	}

	committed[slot] = append(committed[slot], *shift)
	outcome.ShiftID = shift.ID
	outcome.Created = true
	return outcome
}

// resolveUsers collects the distinct emails across the batch and
// issues a single lookup.
func (s *Service) resolveUsers(ctx context.Context, organizationID string, candidates []Candidate) (map[string]domain.User, error) {
	seen := make(map[string]bool, len(candidates))
	emails := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		email := strings.ToLower(strings.TrimSpace(candidate.Email))
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	if len(emails) == 0 {
		return map[string]domain.User{}, nil
	}

	users, err := s.users.FindByEmails(ctx, organizationID, emails)
	if err != nil {
		return nil, fmt.Errorf("resolve users: %w", err)
	}
	byEmail := make(map[string]domain.User, len(users))
	for _, user := range users {
		byEmail[strings.ToLower(user.Email)] = user
	}
	return byEmail, nil
}
