package crowd

import (
	"context"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/crowdpulse/services/crowd CrowdUC

// CrowdUC defines the crowd classification engine
type CrowdUC interface {
	// Push subscription
	Subscribe(ctx context.Context, locationIDs []string) error
	Unsubscribe(ctx context.Context, locationIDs []string) error

	// Cache maintenance
	UpdateCrowdData(ctx context.Context, batch []models.CrowdRecord)
	AnalyzeOpenLocations(ctx context.Context, candidates []models.LocationCandidate) []models.CrowdRecord
	RegisterCandidates(candidates []models.LocationCandidate)
	AnalyzeRegistered(ctx context.Context) error
	RefreshAnalytics(ctx context.Context) error
	PollSubscribed(ctx context.Context) error
	WarmStart(ctx context.Context) error

	// Lookups
	GetCrowdData(locationID string) (models.CrowdRecord, bool)
	GetLocationsByLevel(level models.CrowdLevel) []models.CrowdRecord
	GetAllCrowdData() []models.CrowdRecord
	GetNearbyCrowd(origin models.Coordinates, radiusKm float64) []models.CrowdRecord
	IsStale(record models.CrowdRecord) bool
}
