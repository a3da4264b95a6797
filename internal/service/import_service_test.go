package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-service/internal/domain"
	"github.com/spec-kit/shift-service/internal/events"
	"github.com/spec-kit/shift-service/internal/importer"
	"github.com/spec-kit/shift-service/internal/repository"
	apperrors "github.com/spec-kit/shift-service/pkg/util"
)

type memorySessionRepo struct {
	sessions map[string]*importer.Session
	deleted  []string
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: map[string]*importer.Session{}}
}

func (m *memorySessionRepo) Save(_ context.Context, session *importer.Session, _ time.Duration) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *memorySessionRepo) Get(_ context.Context, id string) (*importer.Session, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrImportSessionNotFound
	}
	return session, nil
}

func (m *memorySessionRepo) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type fixedDirectory struct {
	users []domain.User
}

func (d *fixedDirectory) FindByEmails(_ context.Context, _ string, _ []string) ([]domain.User, error) {
	return d.users, nil
}

type memoryShiftStore struct {
	created []domain.Shift
}

func (s *memoryShiftStore) ListForUserOnDate(_ context.Context, userID, date string) ([]domain.Shift, error) {
	var shifts []domain.Shift
	for _, shift := range s.created {
		if shift.UserID == userID && shift.Date == date {
			shifts = append(shifts, shift)
		}
	}
	return shifts, nil
}

func (s *memoryShiftStore) Create(_ context.Context, shift *domain.Shift) error {
	shift.ID = "shift-" + shift.UserID + "-" + shift.StartTime
	s.created = append(s.created, *shift)
	return nil
}

func newTestImportService(t *testing.T, sessions repository.ImportSessionRepository, dispatcher events.Dispatcher) (*ImportService, *memoryShiftStore) {
	t.Helper()
	store := &memoryShiftStore{}
	pipeline := importer.NewService(importer.Dependencies{
		Users: &fixedDirectory{users: []domain.User{
			{ID: "u-1", OrganizationID: "org-1", Email: "jane@example.com"},
		}},
		Shifts: store,
	})
	svc := NewImportService(ImportDependencies{
		Pipeline:    pipeline,
		SessionRepo: sessions,
		Dispatcher:  dispatcher,
	})
	return svc, store
}

func manager() *domain.User {
	return &domain.User{ID: "mgr-1", OrganizationID: "org-1", Role: domain.UserRoleManager}
}

func TestPreviewThenCommit(t *testing.T) {
	sessions := newMemorySessionRepo()
	svc, store := newTestImportService(t, sessions, nil)

	csv := "email,date,start_time,end_time,role,department\n" +
		"jane@example.com,2024-03-15,09:00,17:00,Nurse,ICU\n"

	session, err := svc.Preview(context.Background(), manager(), "roster.csv", csv)
	require.NoError(t, err)
	require.False(t, session.NeedsMapping())
	require.Len(t, session.Rows, 1)

	result, err := svc.Commit(context.Background(), manager(), session.ID, nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.Created)
	require.Len(t, store.created, 1)
	require.Equal(t, "u-1", store.created[0].UserID)

	// the session is consumed by a successful commit
	require.Equal(t, []string{session.ID}, sessions.deleted)
	_, err = svc.Commit(context.Background(), manager(), session.ID, nil)
	require.Error(t, err)
}

func TestCommitRejectsIncompleteMapping(t *testing.T) {
	sessions := newMemorySessionRepo()
	svc, store := newTestImportService(t, sessions, nil)

	csv := "email,when,start_time,end_time,role,department\n" +
		"jane@example.com,2024-03-15,09:00,17:00,Nurse,ICU\n"

	session, err := svc.Preview(context.Background(), manager(), "roster.csv", csv)
	require.NoError(t, err)
	require.True(t, session.NeedsMapping())

	_, err = svc.Commit(context.Background(), manager(), session.ID, nil)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	require.Contains(t, domainErr.Details["missing_fields"], "date")
	require.Empty(t, store.created)

	// the operator fixes the mapping and commits again
	override := importer.AutoMap(session.Headers)
	override["when"] = importer.FieldDate
	result, err := svc.Commit(context.Background(), manager(), session.ID, override)
	require.NoError(t, err)
	require.Equal(t, 1, result.Created)
}

func TestCommitScopedToOrganization(t *testing.T) {
	sessions := newMemorySessionRepo()
	svc, _ := newTestImportService(t, sessions, nil)

	csv := "email,date,start_time,end_time,role,department\n" +
		"jane@example.com,2024-03-15,09:00,17:00,Nurse,ICU\n"

	session, err := svc.Preview(context.Background(), manager(), "roster.csv", csv)
	require.NoError(t, err)

	outsider := &domain.User{ID: "mgr-2", OrganizationID: "org-2", Role: domain.UserRoleManager}
	_, err = svc.Commit(context.Background(), outsider, session.ID, nil)
	require.Error(t, err)
	require.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestImportDirectPublishesCompletion(t *testing.T) {
	sessions := newMemorySessionRepo()
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventImportCompleted, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc, _ := newTestImportService(t, sessions, dispatcher)

	result, err := svc.ImportDirect(context.Background(), manager(), []importer.Candidate{
		{Email: "jane@example.com", Date: "3/15/2024", StartTime: "9:00 AM", EndTime: "5:00 PM", Role: "Nurse", Department: "ICU"},
		{Email: "ghost@example.com", Date: "2024-03-15", StartTime: "09:00", EndTime: "17:00", Role: "Nurse", Department: "ICU"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	require.Equal(t, 1, result.Created)

	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.ImportCompletedPayload)
	require.True(t, ok)
	require.Equal(t, 2, payload.Total)
	require.Equal(t, 1, payload.Created)
	require.Equal(t, 1, payload.Failed)
}
