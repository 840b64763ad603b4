package handler

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/sharing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBusHandler(t *testing.T, cfg models.SharingConfig) (*SharingBusHandler, *mocks.MockSharingUC, *connection.Manager, *connection.MemoryTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSharingUC(ctrl)

	transport := connection.NewMemoryTransport(false)
	manager := connection.NewManager(transport, models.ConnectionConfig{})
	t.Cleanup(func() { _ = manager.Close() })
	require.NoError(t, manager.Connect(context.Background()))

	return NewSharingBusHandler(uc, manager, manager, cfg), uc, manager, transport
}

func TestSharingBusHandler_Init(t *testing.T) {
	h, _, manager, _ := setupBusHandler(t, models.SharingConfig{CleanupInterval: time.Hour})

	require.NoError(t, h.Init())

	assert.Equal(t, []string{PollerRequestCleanup}, manager.Pollers())
	for _, event := range []string{
		constants.EventLocationShared,
		constants.EventLocationSharingStopped,
		constants.EventLocationRequestReceived,
		constants.EventLocationRequestResponse,
	} {
		assert.Equal(t, 1, manager.HandlerCount(event), event)
	}
}

func TestSharingBusHandler_CleanupPoller(t *testing.T) {
	h, uc, _, _ := setupBusHandler(t, models.SharingConfig{CleanupInterval: 5 * time.Millisecond})

	ticks := make(chan struct{}, 16)
	uc.EXPECT().CleanupExpiredRequests(gomock.Any()).DoAndReturn(func(context.Context) error {
		select {
		case ticks <- struct{}{}:
		default:
		}
		return nil
	}).AnyTimes()
	uc.EXPECT().StopLocationSharing().Return(nil)

	require.NoError(t, h.Init())

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("cleanup poller never ran")
	}
	h.Dispose()
}

func TestSharingBusHandler_Dispose(t *testing.T) {
	h, uc, manager, transport := setupBusHandler(t, models.SharingConfig{CleanupInterval: time.Hour})
	require.NoError(t, h.Init())

	uc.EXPECT().StopLocationSharing().Return(nil).Times(2)
	h.Dispose()
	h.Dispose()

	assert.Empty(t, manager.Pollers())
	assert.Equal(t, 0, manager.HandlerCount(constants.EventLocationShared))

	// no handler left to reach the store
	transport.Inject(constants.EventLocationShared, []byte(`{"user_id":"bob","coordinates":{"latitude":1,"longitude":1}}`))
}

func TestSharingBusHandler_Routing(t *testing.T) {
	tests := []struct {
		name    string
		event   string
		payload string
		expect  func(uc *mocks.MockSharingUC)
	}{
		{
			name:    "location shared",
			event:   constants.EventLocationShared,
			payload: `{"user_id":"bob","coordinates":{"latitude":-6.2,"longitude":106.8},"heading":45}`,
			expect: func(uc *mocks.MockSharingUC) {
				uc.EXPECT().ApplyPeerLocation(gomock.Any()).Do(func(loc models.SharedLocation) {
					assert.Equal(t, "bob", loc.UserID)
					require.NotNil(t, loc.Heading)
					assert.Equal(t, 45.0, *loc.Heading)
					assert.Nil(t, loc.Speed)
				})
			},
		},
		{
			name:    "sharing stopped",
			event:   constants.EventLocationSharingStopped,
			payload: `{"user_id":"bob"}`,
			expect: func(uc *mocks.MockSharingUC) {
				uc.EXPECT().ApplySharingStopped(models.SharingStopped{UserID: "bob"})
			},
		},
		{
			name:    "request received",
			event:   constants.EventLocationRequestReceived,
			payload: `{"id":"r1","from_user_id":"bob","to_user_id":"alice","message":"where?"}`,
			expect: func(uc *mocks.MockSharingUC) {
				uc.EXPECT().ReceiveLocationRequest(models.LocationShareRequest{ID: "r1", FromUserID: "bob", ToUserID: "alice", Message: "where?"})
			},
		},
		{
			name:    "request response",
			event:   constants.EventLocationRequestResponse,
			payload: `{"request_id":"r1","from_user_id":"bob","to_user_id":"alice","accepted":true}`,
			expect: func(uc *mocks.MockSharingUC) {
				uc.EXPECT().ApplyRequestResponse(models.LocationRequestResponse{RequestID: "r1", FromUserID: "bob", ToUserID: "alice", Accepted: true})
			},
		},
		{
			name:    "malformed payload is dropped",
			event:   constants.EventLocationShared,
			payload: `{"user_id":`,
			expect:  func(uc *mocks.MockSharingUC) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc, _, transport := setupBusHandler(t, models.SharingConfig{CleanupInterval: time.Hour})
			require.NoError(t, h.Init())
			tt.expect(uc)

			transport.Inject(tt.event, []byte(tt.payload))
		})
	}
}
