package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/shift-service/internal/importer"
)

// ErrImportSessionNotFound is returned when a session expired or never existed.
var ErrImportSessionNotFound = errors.New("import session not found")

// ImportSessionRepository holds parsed uploads between the mapping
// round and commit. Sessions are keyed by UUID and expire on their own.
type ImportSessionRepository interface {
	Save(ctx context.Context, session *importer.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*importer.Session, error)
	Delete(ctx context.Context, id string) error
}

type importSessionRepository struct {
	client *redis.Client
}

// NewImportSessionRepository returns a Redis-backed implementation.
func NewImportSessionRepository(client *redis.Client) ImportSessionRepository {
	return &importSessionRepository{client: client}
}

func sessionKey(id string) string {
	return "import_session:" + id
}

func (r *importSessionRepository) Save(ctx context.Context, session *importer.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err()
}

func (r *importSessionRepository) Get(ctx context.Context, id string) (*importer.Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrImportSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session importer.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *importSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
