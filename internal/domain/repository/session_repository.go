package repository

import (
	"context"
	"time"
)

// SessionRepository persists session id -> user id mappings.
// Lookup returns apperr.ErrNotFound for unknown or expired sessions.
type SessionRepository interface {
	Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error
	Lookup(ctx context.Context, sid string) (int64, error)
	Delete(ctx context.Context, sid string) error
}
