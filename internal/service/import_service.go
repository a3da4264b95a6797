package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/shift-service/internal/domain"
	"github.com/spec-kit/shift-service/internal/events"
	"github.com/spec-kit/shift-service/internal/importer"
	"github.com/spec-kit/shift-service/internal/repository"
	apperrors "github.com/spec-kit/shift-service/pkg/util"
)

// ImportService fronts the bulk import pipeline: it owns the
// preview/commit session round trip and fires the completion event.
// The row-level work lives in the importer package.
type ImportService struct {
	pipeline   *importer.Service
	sessions   repository.ImportSessionRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	sessionTTL time.Duration
}

// ImportDependencies bundles what the import service needs.
type ImportDependencies struct {
	Pipeline    *importer.Service
	SessionRepo repository.ImportSessionRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	SessionTTL  time.Duration
}

// NewImportService constructs the service.
func NewImportService(deps ImportDependencies) *ImportService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := deps.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ImportService{
		pipeline:   deps.Pipeline,
		sessions:   deps.SessionRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		sessionTTL: ttl,
	}
}

// Preview tokenizes an upload, auto-maps its headers and stores the
// parsed data as a session. An incomplete mapping is not an error
// here; the caller corrects it and commits.
func (s *ImportService) Preview(ctx context.Context, actor *domain.User, fileName, text string) (*importer.Session, error) {
	headers, rows := importer.Parse(text)

	session := &importer.Session{
		ID:             uuid.NewString(),
		OrganizationID: actor.OrganizationID,
		FileName:       fileName,
		Headers:        headers,
		Rows:           rows,
		Mapping:        importer.AutoMap(headers),
		CreatedAt:      time.Now(),
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, err
	}

	s.logger.Info("import preview created",
		zap.String("session_id", session.ID),
		zap.Int("rows", len(rows)),
		zap.Bool("needs_mapping", session.NeedsMapping()))
	return session, nil
}

// Commit runs the pipeline over a previewed upload. A mapping override
// replaces the auto-mapped one; committing with an incomplete mapping
// is rejected before any row is touched.
func (s *ImportService) Commit(ctx context.Context, actor *domain.User, sessionID string, override importer.ColumnMapping) (*importer.Result, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrImportSessionNotFound) {
			return nil, apperrors.NewNotFound("import session", nil)
		}
		return nil, err
	}
	if session.OrganizationID != actor.OrganizationID {
		return nil, apperrors.NewForbidden("import session outside organization")
	}

	if override != nil {
		session.Mapping = override
	}
	if session.NeedsMapping() {
		missing := make([]string, 0, len(session.Mapping.Missing()))
		for _, field := range session.Mapping.Missing() {
			missing = append(missing, string(field))
		}
		return nil, apperrors.NewValidationError("column mapping incomplete", map[string]any{
			"missing_fields": missing,
		})
	}

	candidates := importer.CandidatesFromRows(session.Headers, session.Mapping, session.Rows)
	result, err := s.pipeline.Import(ctx, actor.OrganizationID, candidates)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to delete import session", zap.String("session_id", sessionID), zap.Error(err))
	}
	s.publishCompleted(ctx, actor, result)
	return result, nil
}

// ImportDirect runs a JSON batch through the pipeline without a
// session round trip.
func (s *ImportService) ImportDirect(ctx context.Context, actor *domain.User, candidates []importer.Candidate) (*importer.Result, error) {
	result, err := s.pipeline.Import(ctx, actor.OrganizationID, candidates)
	if err != nil {
		return nil, err
	}
	s.publishCompleted(ctx, actor, result)
	return result, nil
}

func (s *ImportService) publishCompleted(ctx context.Context, actor *domain.User, result *importer.Result) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:             uuid.NewString(),
		Type:           events.EventImportCompleted,
		OrganizationID: actor.OrganizationID,
		Actor:          events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp:      time.Now(),
		Payload: events.ImportCompletedPayload{
			Total:   result.Total,
			Created: result.Created,
			Failed:  result.Total - result.Created,
		},
	})
}
