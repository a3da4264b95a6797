package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-service/internal/domain"
)

type stubDirectory struct {
	users   []domain.User
	queries int
}

func (d *stubDirectory) FindByEmails(_ context.Context, _ string, emails []string) ([]domain.User, error) {
	d.queries++
	want := make(map[string]bool, len(emails))
	for _, email := range emails {
		want[strings.ToLower(email)] = true
	}
	var found []domain.User
	for _, user := range d.users {
		if want[strings.ToLower(user.Email)] {
			found = append(found, user)
		}
	}
	return found, nil
}

type stubShiftStore struct {
	existing   map[string][]domain.Shift // userID|date -> shifts
	created    []domain.Shift
	failInsert map[int]error // 1-based insert attempt -> error
	inserts    int
}

func (s *stubShiftStore) ListForUserOnDate(_ context.Context, userID, date string) ([]domain.Shift, error) {
	return s.existing[userID+"|"+date], nil
}

func (s *stubShiftStore) Create(_ context.Context, shift *domain.Shift) error {
	s.inserts++
	if err := s.failInsert[s.inserts]; err != nil {
		return err
	}
	shift.ID = fmt.Sprintf("shift-%d", s.inserts)
	s.created = append(s.created, *shift)
	return nil
}

func newTestService(users []domain.User, store *stubShiftStore) (*Service, *stubDirectory) {
	directory := &stubDirectory{users: users}
	service := NewService(Dependencies{Users: directory, Shifts: store})
	return service, directory
}

func validCandidate(email, start, end string) Candidate {
	return Candidate{
		Email:      email,
		Date:       "2024-03-15",
		StartTime:  start,
		EndTime:    end,
		Role:       "Nurse",
		Department: "ER",
	}
}

func TestImportHappyPath(t *testing.T) {
	store := &stubShiftStore{}
	service, directory := newTestService([]domain.User{
		{ID: "u1", Email: "alice@example.com"},
		{ID: "u2", Email: "bob@example.com"},
	}, store)

	result, err := service.Import(context.Background(), "org-1", []Candidate{
		validCandidate("alice@example.com", "09:00", "17:00"),
		validCandidate("bob@example.com", "8:00 AM", "4:00 PM"),
	})

	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	require.Equal(t, 2, result.Created)
	require.Equal(t, 1, directory.queries, "emails resolved with a single batched lookup")
	require.Len(t, store.created, 2)
	require.Equal(t, "org-1", store.created[0].OrganizationID)
	require.Equal(t, "08:00", store.created[1].StartTime)
	require.Equal(t, "shift-1", result.Outcomes[0].ShiftID)
}

func TestImportUnknownEmail(t *testing.T) {
	store := &stubShiftStore{}
	service, _ := newTestService([]domain.User{{ID: "u1", Email: "alice@example.com"}}, store)

	result, err := service.Import(context.Background(), "org-1", []Candidate{
		validCandidate("alice@example.com", "09:00", "12:00"),
		validCandidate("ghost@example.com", "09:00", "12:00"),
		validCandidate("alice@example.com", "13:00", "17:00"),
	})

	require.NoError(t, err)
	require.Equal(t, 2, result.Created)
	rejected := result.Outcomes[1]
	require.False(t, rejected.Created)
	require.Equal(t, 2, rejected.Row)
	require.Equal(t, []string{"User not found: ghost@example.com"}, rejected.Reasons)
}

func TestImportPartialFailureIsolation(t *testing.T) {
	store := &stubShiftStore{}
	var users []domain.User
	var candidates []Candidate
	for i := 0; i < 10; i++ {
		email := fmt.Sprintf("worker%d@example.com", i)
		users = append(users, domain.User{ID: fmt.Sprintf("u%d", i), Email: email})
		candidates = append(candidates, validCandidate(email, "09:00", "17:00"))
	}
	candidates[4].EndTime = "not a time"
	service, _ := newTestService(users, store)

	result, err := service.Import(context.Background(), "org-1", candidates)

	require.NoError(t, err)
	require.Equal(t, 10, result.Total)
	require.Equal(t, 9, result.Created)
	require.False(t, result.Outcomes[4].Created)
}

func TestImportPreservesRowOrder(t *testing.T) {
	store := &stubShiftStore{}
	service, _ := newTestService([]domain.User{{ID: "u1", Email: "a@example.com"}}, store)

	result, err := service.Import(context.Background(), "org-1", []Candidate{
		validCandidate("a@example.com", "09:00", "10:00"),
		validCandidate("missing@example.com", "10:00", "11:00"),
		validCandidate("a@example.com", "bad", "11:00"),
		validCandidate("a@example.com", "11:00", "12:00"),
	})

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 4)
	for i, outcome := range result.Outcomes {
		require.Equal(t, i+1, outcome.Row)
	}
}

func TestImportRejectsOverlapWithPersistedShift(t *testing.T) {
	store := &stubShiftStore{
		existing: map[string][]domain.Shift{
			"u1|2024-03-15": {{Date: "2024-03-15", StartTime: "10:00", EndTime: "14:00"}},
		},
	}
	service, _ := newTestService([]domain.User{{ID: "u1", Email: "a@example.com"}}, store)

	result, err := service.Import(context.Background(), "org-1", []Candidate{
		validCandidate("a@example.com", "09:00", "11:00"),
		validCandidate("a@example.com", "14:00", "18:00"), // touches, no conflict
	})

	require.NoError(t, err)
	require.Equal(t, 1, result.Created)
	require.Equal(t, []string{"overlaps with an existing shift"}, result.Outcomes[0].Reasons)
	require.True(t, result.Outcomes[1].Created)
}

func TestImportChecksSiblingRowsInSameBatch(t *testing.T) {
	store := &stubShiftStore{}
	service, _ := newTestService([]domain.User{{ID: "u1", Email: "a@example.com"}}, store)

	result, err := service.Import(context.Background(), "org-1", []Candidate{
		validCandidate("a@example.com", "09:00", "17:00"),
		validCandidate("a@example.com", "12:00", "20:00"),
	})

	require.NoError(t, err)
	require.Equal(t, 1, result.Created)
	require.Equal(t, []string{"overlaps with an existing shift"}, result.Outcomes[1].Reasons)
}

func TestImportRecordsInsertFailure(t *testing.T) {
	store := &stubShiftStore{failInsert: map[int]error{1: errors.New("connection reset")}}
	service, _ := newTestService([]domain.User{
		{ID: "u1", Email: "a@example.com"},
		{ID: "u2", Email: "b@example.com"},
	}, store)

	result, err := service.Import(context.Background(), "org-1", []Candidate{
		validCandidate("a@example.com", "09:00", "17:00"),
		validCandidate("b@example.com", "09:00", "17:00"),
	})

	require.NoError(t, err)
	require.Equal(t, 1, result.Created)
	require.Equal(t, []string{"connection reset"}, result.Outcomes[0].Reasons)
	require.True(t, result.Outcomes[1].Created)
}

func TestImportEnforcesRowLimit(t *testing.T) {
	store := &stubShiftStore{}
	directory := &stubDirectory{}
	service := NewService(Dependencies{Users: directory, Shifts: store, MaxRows: 1})

	_, err := service.Import(context.Background(), "org-1", []Candidate{
		validCandidate("a@example.com", "09:00", "10:00"),
		validCandidate("b@example.com", "09:00", "10:00"),
	})

	require.Error(t, err)
	require.Zero(t, store.inserts)
}

func TestImportEmptyBatch(t *testing.T) {
	store := &stubShiftStore{}
	service, directory := newTestService(nil, store)

	result, err := service.Import(context.Background(), "org-1", nil)

	require.NoError(t, err)
	require.Zero(t, result.Total)
	require.Zero(t, result.Created)
	require.Zero(t, directory.queries, "no lookup issued for an empty batch")
}

func TestCandidatesFromRows(t *testing.T) {
	headers := []string{"date", "start_time", "end_time", "role", "location", "email"}
	mapping := AutoMap(headers)
	rows := [][]string{
		{"2024-03-15", "09:00", "17:00", "Nurse", "Downtown Clinic", "test@example.com"},
	}

	candidates := CandidatesFromRows(headers, mapping, rows)

	require.Len(t, candidates, 1)
	require.Equal(t, "test@example.com", candidates[0].Email)
	require.Equal(t, "Downtown Clinic", candidates[0].Department)
}
