package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, "test-secret", time.Hour), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, expires, err := store.Create(ctx, Data{UserID: 42, IsAdmin: true})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expires.After(time.Now()))

	data, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.UserID)
	assert.True(t, data.IsAdmin)
}

func TestSessionDestroy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, _, err := store.Create(ctx, Data{UserID: 42})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// Destroy is idempotent.
	require.NoError(t, store.Destroy(ctx, token))
}

func TestSessionExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, _, err := store.Create(ctx, Data{UserID: 42})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionRejectsTamperedToken(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, _, err := store.Create(ctx, Data{UserID: 42})
	require.NoError(t, err)

	_, err = store.Get(ctx, token+"x")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = store.Get(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionForeignSecretRejected(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	a := NewStore(rdb, "secret-a", time.Hour)
	b := NewStore(rdb, "secret-b", time.Hour)
	ctx := context.Background()

	token, _, err := a.Create(ctx, Data{UserID: 42})
	require.NoError(t, err)

	_, err = b.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}
