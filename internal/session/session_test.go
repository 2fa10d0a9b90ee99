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

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	// Destroying an unknown token is not an error
	assert.NoError(t, store.Destroy(context.Background(), "nope"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	store.now = func() time.Time { return now.Add(TTL - time.Minute) }
	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	store.now = func() time.Time { return now.Add(TTL + time.Minute) }
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		token, err := store.Create(ctx, uint(i))
		require.NoError(t, err)
		_, dup := seen[token]
		assert.False(t, dup)
		seen[token] = struct{}{}
	}
}

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_Lifecycle(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 99)
	require.NoError(t, err)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(99), userID)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 5)
	require.NoError(t, err)

	mr.FastForward(TTL + time.Minute)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}
