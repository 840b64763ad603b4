package crowd

import (
	"context"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/crowdpulse/services/crowd CrowdRepo

// CrowdRepo keeps the latest snapshot per location for warm starts
type CrowdRepo interface {
	SaveSnapshot(ctx context.Context, record models.CrowdRecord) error
	LoadSnapshots(ctx context.Context) ([]models.CrowdRecord, error)
}
