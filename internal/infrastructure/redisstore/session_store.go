package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/repository"
)

// SessionStore keeps each session as a Redis hash with a TTL.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *SessionStore) Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	key := sessionKey(sid)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    userID,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w: %w", apperr.ErrDataAccess, err)
	}
	return nil
}

func (s *SessionStore) Lookup(ctx context.Context, sid string) (int64, error) {
	v, err := s.rdb.HGet(ctx, sessionKey(sid), "user_id").Result()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("lookup session: %w", apperr.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("lookup session: %w: %w", apperr.ErrDataAccess, err)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("lookup session: corrupt user_id %q: %w", v, apperr.ErrNotFound)
	}
	return id, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w: %w", apperr.ErrDataAccess, err)
	}
	return nil
}

var _ repository.SessionRepository = (*SessionStore)(nil)
