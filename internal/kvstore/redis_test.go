package kvstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live server only when REDIS_ADDR is set.
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := NewRedisClient(addr)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	s := NewRedisStore(client, "cardkeeper-test:"+uuid.NewString()+":")
	t.Cleanup(func() { _ = s.Clear(context.Background()) })
	return s
}

func TestRedisStore_Integration(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	v, err := s.Get(ctx, "cards_v1")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set(ctx, "cards_v1", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "other", []byte(`x`)))

	v, err = s.Get(ctx, "cards_v1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"cards_v1": []byte(`[]`), "other": []byte(`x`)}, all)

	require.NoError(t, s.Delete(ctx, "other"))
	require.NoError(t, s.Clear(ctx))
	all, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	client := NewRedisClient("127.0.0.1:1")
	t.Cleanup(func() { _ = client.Close() })
	s := NewRedisStore(client, DefaultRedisPrefix)

	_, err := s.Get(context.Background(), "cards_v1")
	require.ErrorContains(t, err, "failed to get redis[cards_v1]")
}
