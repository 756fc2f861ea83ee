package kvstore

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis no disponible: %v", err)
	}
	return client
}

func TestRedisStore_SetYGet(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	s := NewRedisStore(client, "stockmaster-test:")
	client.Del(ctx, "stockmaster-test:state")

	_, found, err := s.Get(ctx, "state")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "state", `{"projects":[]}`))
	val, found, err := s.Get(ctx, "state")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"projects":[]}`, val)

	raw, _ := client.Get(ctx, "stockmaster-test:state").Result()
	assert.Equal(t, val, raw, "la clave debe llevar el prefijo")
	client.Del(ctx, "stockmaster-test:state")
}
