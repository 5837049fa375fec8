package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	repo "github.com/oksasatya/lightbnb-api/internal/domain/repository"
	"github.com/oksasatya/lightbnb-api/pkg/helpers"
)

// SessionService issues and resolves cookie sessions backed by the session store.
type SessionService struct {
	Repo   repo.SessionRepository
	Tokens *helpers.SessionTokens
}

func NewSessionService(r repo.SessionRepository, tokens *helpers.SessionTokens) *SessionService {
	return &SessionService{Repo: r, Tokens: tokens}
}

// Start records a new session for userID and returns the signed cookie value.
func (s *SessionService) Start(ctx context.Context, userID int64) (string, time.Time, error) {
	sid := uuid.NewString()
	token, exp, err := s.Tokens.Generate(sid)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	if err := s.Repo.Save(ctx, sid, userID, s.Tokens.TTL); err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Resolve maps a cookie value to its live session.
// A bad signature, an expired token or a missing server-side entry all yield ErrNotFound.
func (s *SessionService) Resolve(ctx context.Context, token string) (entity.Session, error) {
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return entity.Session{}, fmt.Errorf("parse session token: %w", apperr.ErrNotFound)
	}
	uid, err := s.Repo.Lookup(ctx, claims.SessionID)
	if err != nil {
		return entity.Session{}, err
	}
	sess := entity.Session{ID: claims.SessionID, UserID: uid}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// End removes the server-side session. Unparseable tokens are ignored.
func (s *SessionService) End(ctx context.Context, token string) error {
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return nil
	}
	return s.Repo.Delete(ctx, claims.SessionID)
}
