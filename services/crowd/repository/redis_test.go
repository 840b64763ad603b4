package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/crowdpulse/internal/pkg/database"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *CrowdRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewCrowdRepository(database.NewRedisClientFromClient(client))
}

func TestCrowdRepo_SaveAndLoad(t *testing.T) {
	mr, repo := setupTestRedis(t)
	ctx := context.Background()
	stamp := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	first := models.CrowdRecord{LocationID: "cafe-1", Level: models.CrowdHigh, RawCount: 40, LastUpdated: stamp}
	second := models.CrowdRecord{LocationID: "cafe-1", Level: models.CrowdLow, RawCount: 3, LastUpdated: stamp.Add(time.Minute)}
	other := models.CrowdRecord{LocationID: "bank-1", Level: models.CrowdMedium, RawCount: 12, LastUpdated: stamp}

	require.NoError(t, repo.SaveSnapshot(ctx, first))
	require.NoError(t, repo.SaveSnapshot(ctx, second))
	require.NoError(t, repo.SaveSnapshot(ctx, other))

	assert.Equal(t, "1709287260000", mr.HGet("crowd:snapshot:cafe-1", "updated_at"))

	records, err := repo.LoadSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byID := map[string]models.CrowdRecord{}
	for _, r := range records {
		byID[r.LocationID] = r
	}
	assert.Equal(t, 3, byID["cafe-1"].RawCount)
	assert.Equal(t, models.CrowdLow, byID["cafe-1"].Level)
	assert.True(t, byID["cafe-1"].LastUpdated.Equal(stamp.Add(time.Minute)))
	assert.Equal(t, 12, byID["bank-1"].RawCount)
}

func TestCrowdRepo_LoadPrunesDanglingIndex(t *testing.T) {
	mr, repo := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, models.CrowdRecord{LocationID: "market-1", RawCount: 20}))
	mr.Del("crowd:snapshot:market-1")
	_, err := mr.SAdd("crowd:locations", "ghost")
	require.NoError(t, err)

	records, err := repo.LoadSnapshots(ctx)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.False(t, mr.Exists("crowd:locations"))
}

func TestCrowdRepo_LoadSkipsCorruptPayload(t *testing.T) {
	mr, repo := setupTestRedis(t)
	ctx := context.Background()

	mr.HSet("crowd:snapshot:broken", "payload", "{not json")
	_, err := mr.SAdd("crowd:locations", "broken")
	require.NoError(t, err)
	require.NoError(t, repo.SaveSnapshot(ctx, models.CrowdRecord{LocationID: "ok", RawCount: 1}))

	records, err := repo.LoadSnapshots(ctx)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ok", records[0].LocationID)
}

func TestCrowdRepo_RedisDown(t *testing.T) {
	mr, repo := setupTestRedis(t)
	mr.Close()

	assert.Error(t, repo.SaveSnapshot(context.Background(), models.CrowdRecord{LocationID: "cafe-1"}))
	_, err := repo.LoadSnapshots(context.Background())
	assert.Error(t, err)
}
