package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
)

func newStore(t *testing.T) (*miniredis.Miniredis, *SessionStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewSessionStore(rdb)
}

func TestSessionStore_SaveLookupDelete(t *testing.T) {
	mr, store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", 42, time.Hour))
	assert.Equal(t, "42", mr.HGet("session:abc", "user_id"))
	assert.NotEmpty(t, mr.HGet("session:abc", "created_at"))
	assert.Equal(t, time.Hour, mr.TTL("session:abc"))

	uid, err := store.Lookup(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Lookup(ctx, "abc")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	mr, store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", 1, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Lookup(ctx, "abc")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSessionStore_CorruptAndUnavailable(t *testing.T) {
	mr, store := newStore(t)
	ctx := context.Background()

	mr.HSet("session:bad", "user_id", "not-a-number")
	_, err := store.Lookup(ctx, "bad")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	mr.Close()
	_, err = store.Lookup(ctx, "abc")
	assert.ErrorIs(t, err, apperr.ErrDataAccess)
	assert.ErrorIs(t, store.Save(ctx, "x", 1, time.Minute), apperr.ErrDataAccess)
}
