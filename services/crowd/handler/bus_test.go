package handler

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/crowd/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBusHandler(t *testing.T, cfg models.CrowdConfig) (*CrowdBusHandler, *mocks.MockCrowdUC, *connection.Manager, *connection.MemoryTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCrowdUC(ctrl)

	transport := connection.NewMemoryTransport(false)
	manager := connection.NewManager(transport, models.ConnectionConfig{})
	t.Cleanup(func() { _ = manager.Close() })
	require.NoError(t, manager.Connect(context.Background()))

	h := NewCrowdBusHandler(uc, manager, manager, cfg)
	return h, uc, manager, transport
}

func hourly() models.CrowdConfig {
	return models.CrowdConfig{
		LivePollInterval: time.Hour,
		AnalysisInterval: time.Hour,
		PollInterval:     time.Hour,
	}
}

func TestCrowdBusHandler_Init(t *testing.T) {
	t.Run("without analytics url", func(t *testing.T) {
		h, _, manager, _ := setupBusHandler(t, hourly())

		require.NoError(t, h.Init())

		assert.ElementsMatch(t, []string{PollerAnalysis, PollerSnapshot}, manager.Pollers())
		assert.Equal(t, 1, manager.HandlerCount(constants.EventCrowdUpdate))
		assert.Equal(t, 1, manager.HandlerCount(constants.EventLocationCrowdUpdate))
	})

	t.Run("with analytics url", func(t *testing.T) {
		cfg := hourly()
		cfg.AnalyticsURL = "http://analytics.local"
		h, _, manager, _ := setupBusHandler(t, cfg)

		require.NoError(t, h.Init())

		assert.ElementsMatch(t, []string{PollerLiveAnalytics, PollerAnalysis, PollerSnapshot}, manager.Pollers())
	})

	t.Run("invalid interval rolls back", func(t *testing.T) {
		cfg := hourly()
		cfg.PollInterval = 0
		h, _, manager, _ := setupBusHandler(t, cfg)

		err := h.Init()

		assert.Error(t, err)
		assert.Empty(t, manager.Pollers())
		assert.Equal(t, 0, manager.HandlerCount(constants.EventCrowdUpdate))
	})
}

func TestCrowdBusHandler_Dispose(t *testing.T) {
	h, _, manager, transport := setupBusHandler(t, hourly())
	require.NoError(t, h.Init())

	h.Dispose()
	h.Dispose()

	assert.Empty(t, manager.Pollers())
	assert.Equal(t, 0, manager.HandlerCount(constants.EventCrowdUpdate))
	// no handler left, so the mock must see no call
	transport.Inject(constants.EventCrowdUpdate, []byte(`{"location_id":"a"}`))
}

func TestCrowdBusHandler_CrowdUpdate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantIDs []string
	}{
		{
			name:    "array payload",
			payload: `[{"location_id":"a","level":"low"},{"location_id":"b","level":"high"}]`,
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "single record",
			payload: ` {"location_id":"c","level":"medium","raw_count":7}`,
			wantIDs: []string{"c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc, _, transport := setupBusHandler(t, hourly())
			require.NoError(t, h.Init())

			uc.EXPECT().
				UpdateCrowdData(gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, batch []models.CrowdRecord) {
					ids := make([]string, 0, len(batch))
					for _, r := range batch {
						ids = append(ids, r.LocationID)
					}
					assert.Equal(t, tt.wantIDs, ids)
				})

			transport.Inject(constants.EventCrowdUpdate, []byte(tt.payload))
		})
	}
}

func TestCrowdBusHandler_CrowdUpdateMalformed(t *testing.T) {
	h, _, _, transport := setupBusHandler(t, hourly())
	require.NoError(t, h.Init())

	// decode errors are logged by the bus and never reach the usecase
	transport.Inject(constants.EventCrowdUpdate, []byte(`[{"location_id":`))
	transport.Inject(constants.EventCrowdUpdate, []byte(`not json`))
}

func TestCrowdBusHandler_LocationCrowdUpdate(t *testing.T) {
	h, uc, _, transport := setupBusHandler(t, hourly())
	require.NoError(t, h.Init())

	uc.EXPECT().
		AnalyzeOpenLocations(gomock.Any(), []models.LocationCandidate{{
			ID:       "cafe-1",
			Category: "cafe",
			IsOpen:   true,
		}}).
		Return(nil)

	transport.Inject(constants.EventLocationCrowdUpdate, []byte(`{"id":"cafe-1","category":"cafe","is_open":true}`))
}
