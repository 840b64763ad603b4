package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/database"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// CrowdRepo implements crowd.CrowdRepo on Redis: one hash per location plus
// an index set of location ids
type CrowdRepo struct {
	redisClient *database.RedisClient
}

// NewCrowdRepository creates a new crowd snapshot repository
func NewCrowdRepository(redisClient *database.RedisClient) *CrowdRepo {
	return &CrowdRepo{redisClient: redisClient}
}

// SaveSnapshot overwrites the stored snapshot of one location
func (r *CrowdRepo) SaveSnapshot(ctx context.Context, record models.CrowdRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal crowd snapshot: %w", err)
	}

	key := fmt.Sprintf(constants.KeyCrowdSnapshot, record.LocationID)
	err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			constants.FieldPayload, payload,
			constants.FieldUpdatedAt, record.LastUpdated.UnixMilli())
		pipe.SAdd(ctx, constants.KeyCrowdIndex, record.LocationID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save crowd snapshot: %w", err)
	}
	return nil
}

// LoadSnapshots returns every stored snapshot. Index entries whose hash has
// gone are pruned.
func (r *CrowdRepo) LoadSnapshots(ctx context.Context) ([]models.CrowdRecord, error) {
	ids, err := r.redisClient.SMembers(ctx, constants.KeyCrowdIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list crowd snapshots: %w", err)
	}

	records := make([]models.CrowdRecord, 0, len(ids))
	for _, id := range ids {
		fields, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyCrowdSnapshot, id))
		if err != nil {
			return nil, fmt.Errorf("failed to read crowd snapshot %s: %w", id, err)
		}

		payload, ok := fields[constants.FieldPayload]
		if !ok {
			if err := r.redisClient.SRem(ctx, constants.KeyCrowdIndex, id); err != nil {
				logger.Warn("Failed to prune crowd index", logger.String("location_id", id), logger.Err(err))
			}
			continue
		}

		var record models.CrowdRecord
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			logger.Warn("Skipping corrupt crowd snapshot", logger.String("location_id", id), logger.Err(err))
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
