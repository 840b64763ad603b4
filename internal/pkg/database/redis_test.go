package database

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClientFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: atoiPort(t, mr.Port()), PoolSize: 2})

	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GetClient())
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1, PoolSize: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_HashAndSet(t *testing.T) {
	client, _ := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, client.HSet(ctx, "crowd:snapshot:cafe-1", map[string]interface{}{"payload": "{}", "updated_at": "1"}))
	fields, err := client.HGetAll(ctx, "crowd:snapshot:cafe-1")
	require.NoError(t, err)
	assert.Equal(t, "{}", fields["payload"])

	require.NoError(t, client.SAdd(ctx, "crowd:locations", "cafe-1", "bank-1"))
	members, err := client.SMembers(ctx, "crowd:locations")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cafe-1", "bank-1"}, members)

	require.NoError(t, client.SRem(ctx, "crowd:locations", "bank-1"))
	require.NoError(t, client.Delete(ctx, "crowd:snapshot:cafe-1"))
	members, err = client.SMembers(ctx, "crowd:locations")
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe-1"}, members)
}

func atoiPort(t *testing.T, port string) int {
	t.Helper()
	n, err := strconv.Atoi(port)
	require.NoError(t, err)
	return n
}

func TestRedisClient_TxPipelined(t *testing.T) {
	client, _ := setupRedis(t)
	ctx := context.Background()

	err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, "crowd:snapshot:bank-1", "payload", "{}")
		pipe.SAdd(ctx, "crowd:locations", "bank-1")
		return nil
	})

	require.NoError(t, err)
	members, err := client.SMembers(ctx, "crowd:locations")
	require.NoError(t, err)
	assert.Equal(t, []string{"bank-1"}, members)
}

func TestRedisClient_Ping_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetErr(redis.ErrClosed)

	assert.ErrorIs(t, client.Ping(context.Background()), redis.ErrClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
