package crowd

import (
	"context"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/crowdpulse/services/crowd CrowdGW

// CrowdGW defines the outbound calls of the crowd engine
type CrowdGW interface {
	// RequestCrowdData emits request-crowd-data on the push channel
	RequestCrowdData(req models.CrowdDataRequest) error
	// FetchAnalytics reads the analytics query surface for one location
	FetchAnalytics(ctx context.Context, locationID string) (*models.AnalyticsResponse, error)
}
