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

// setupTestRedis creates a miniredis server and returns a RedisStore on it
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStore_Miss(t *testing.T) {
	store, _ := setupTestRedis(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionMiss)
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	st := &State{UserName: "Asha", B2BMode: true, Draft: []DraftItem{{ProductID: 3, Quantity: 2}}}
	require.NoError(t, store.Set(ctx, "s1", st))

	assert.True(t, mr.Exists(sessionKey("s1")))
	assert.Equal(t, time.Hour, mr.TTL(sessionKey("s1")))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.UserName)
	assert.True(t, got.B2BMode)
	assert.Equal(t, st.Draft, got.Draft)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionMiss)
}

func TestRedisStore_ExpiresWithTTL(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", &State{UserName: "x"}))
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionMiss)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	store, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(sessionKey("s1"), "{broken"))

	_, err := store.Get(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionMiss)
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	_, err := store.Get(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionMiss)
}
