package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	httpclient "github.com/piresc/crowdpulse/internal/pkg/http"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrowdGW_RequestCrowdData(t *testing.T) {
	transport := connection.NewMemoryTransport(false)
	manager := connection.NewManager(transport, models.ConnectionConfig{})
	gw := NewCrowdGW(manager, nil)

	// dropped while disconnected
	err := gw.RequestCrowdData(models.CrowdDataRequest{LocationIDs: []string{"cafe-1"}})
	assert.ErrorIs(t, err, models.ErrTransportUnavailable)

	require.NoError(t, manager.Connect(context.Background()))
	defer manager.Close()
	require.NoError(t, gw.RequestCrowdData(models.CrowdDataRequest{LocationIDs: []string{"cafe-1"}, Subscribe: true}))

	published := transport.PublishedFor(constants.EventRequestCrowdData)
	require.Len(t, published, 1)
	assert.JSONEq(t, `{"location_ids":["cafe-1"],"subscribe":true}`, string(published[0]))
}

func TestCrowdGW_FetchAnalytics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/locations/cafe-1/analytics":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"summary": map[string]interface{}{"currentCount": 14, "crowdLevel": "busy", "trend": "increasing"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	gw := NewCrowdGW(nil, httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	tests := []struct {
		name       string
		locationID string
		wantErr    bool
		wantCount  int
	}{
		{name: "summary shape", locationID: "cafe-1", wantCount: 14},
		{name: "upstream 404", locationID: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := gw.FetchAnalytics(context.Background(), tt.locationID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.locationID, resp.LocationID)
			require.NotNil(t, resp.Summary)
			assert.Equal(t, tt.wantCount, resp.Summary.CurrentCount)
		})
	}
}

func TestCrowdGW_FetchAnalyticsDisabled(t *testing.T) {
	gw := NewCrowdGW(nil, nil)
	_, err := gw.FetchAnalytics(context.Background(), "cafe-1")
	assert.ErrorIs(t, err, ErrAnalyticsDisabled)
}
