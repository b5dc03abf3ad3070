package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := NewRedisStore(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestRedisStore(t)

	require.NoError(t, store.Set(ctx, KeyInvoices, `[{"id":"1"}]`))

	value, ok, err := store.Get(ctx, KeyInvoices)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestRedisStore_MissingKey(t *testing.T) {
	ctx := context.Background()
	store := createTestRedisStore(t)

	value, ok, err := store.Get(ctx, KeyUserData)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestRedisStore_MultiRemove(t *testing.T) {
	ctx := context.Background()
	store := createTestRedisStore(t)

	require.NoError(t, store.Set(ctx, KeyAuthToken, "mock-jwt-token"))
	require.NoError(t, store.Set(ctx, KeyUserData, `{"id":"1"}`))

	require.NoError(t, store.MultiRemove(ctx, []string{KeyAuthToken, KeyUserData}))

	_, ok, err := store.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(ctx, KeyUserData)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisStore_BadAddress(t *testing.T) {
	_, err := NewRedisStore(context.Background(), RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
