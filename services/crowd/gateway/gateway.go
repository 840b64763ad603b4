package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	httpclient "github.com/piresc/crowdpulse/internal/pkg/http"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// ErrAnalyticsDisabled is returned when no analytics endpoint is configured
var ErrAnalyticsDisabled = errors.New("crowd analytics endpoint not configured")

// CrowdGW implements crowd.CrowdGW over the push channel and the analytics
// HTTP surface
type CrowdGW struct {
	emitter   connection.Emitter
	analytics *httpclient.Client
}

// NewCrowdGW creates the crowd gateway. analytics may be nil.
func NewCrowdGW(emitter connection.Emitter, analytics *httpclient.Client) *CrowdGW {
	return &CrowdGW{
		emitter:   emitter,
		analytics: analytics,
	}
}

// RequestCrowdData emits request-crowd-data
func (g *CrowdGW) RequestCrowdData(req models.CrowdDataRequest) error {
	return g.emitter.Emit(constants.EventRequestCrowdData, req)
}

// FetchAnalytics reads /locations/{id}/analytics
func (g *CrowdGW) FetchAnalytics(ctx context.Context, locationID string) (*models.AnalyticsResponse, error) {
	if g.analytics == nil {
		return nil, ErrAnalyticsDisabled
	}

	var resp models.AnalyticsResponse
	endpoint := fmt.Sprintf("/locations/%s/analytics", url.PathEscape(locationID))
	if err := g.analytics.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch analytics for %s: %w", locationID, err)
	}
	if resp.LocationID == "" {
		resp.LocationID = locationID
	}
	return &resp, nil
}
