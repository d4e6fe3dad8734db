package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T) (*redis.Client, func()) {
	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)

	uri, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	client := redis.NewClient(opts)

	cleanup := func() {
		client.Close()
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

func TestRedisStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	ctx := context.Background()

	client, cleanup := setupRedis(t)
	defer cleanup()

	m := NewManager(NewRedisStore(client, time.Hour))
	id := NewID()

	_, err := m.Update(ctx, id, func(st *State) error {
		st.SignIn("Kiran")
		st.ToggleB2B()
		return st.AddDraftItem(4, 3)
	})
	require.NoError(t, err)

	st, err := m.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Kiran", st.UserName)
	assert.True(t, st.B2BMode)
	assert.Equal(t, []DraftItem{{ProductID: 4, Quantity: 3}}, st.Draft)

	ttl, err := client.TTL(ctx, sessionKey(id)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, m.Delete(ctx, id))
	st, err = m.Load(ctx, id)
	require.NoError(t, err)
	assert.False(t, st.SignedIn())
}
