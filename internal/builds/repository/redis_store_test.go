package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
)

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client)
}

func TestRedisStore_PutGet(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	record := testRecord("red00001")
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, "red00001")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.PackageName, got.PackageName)
}

func TestRedisStore_GetUnknown(t *testing.T) {
	store := setupRedisStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestRedisStore_UpdateAndList(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	record := testRecord("red00002")
	require.NoError(t, store.Put(ctx, record))

	record.Status = domain.StatusCompleted
	record.Progress = 100
	require.NoError(t, store.Put(ctx, record))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, domain.StatusCompleted, summaries[0].Status)
}
