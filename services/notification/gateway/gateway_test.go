package gateway

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectedManager(t *testing.T) (*connection.Manager, *connection.MemoryTransport) {
	t.Helper()
	transport := connection.NewMemoryTransport(false)
	manager := connection.NewManager(transport, models.ConnectionConfig{})
	t.Cleanup(func() { _ = manager.Close() })
	require.NoError(t, manager.Connect(context.Background()))
	return manager, transport
}

func TestNotificationGW_EventNames(t *testing.T) {
	manager, transport := connectedManager(t)
	gw := NewNotificationGW(manager)

	sub := models.PushSubscription{Endpoint: "https://push.example/abc"}
	require.NoError(t, gw.SubscribePush(models.PushSubscriptionRequest{UserID: "alice", Subscription: sub, ApplicationKey: "BPub"}))
	require.NoError(t, gw.SyncSettings(models.NotificationSettingsUpdate{UserID: "alice", Settings: models.DefaultNotificationSettings()}))
	require.NoError(t, gw.UnsubscribePush(models.PushUnsubscribe{UserID: "alice", Endpoint: sub.Endpoint}))

	var events []string
	for _, p := range transport.Published() {
		events = append(events, p.Event)
	}
	assert.Equal(t, []string{
		constants.EventPushSubscription,
		constants.EventNotificationSettingsUpdate,
		constants.EventPushUnsubscribe,
	}, events)

	var req models.PushSubscriptionRequest
	require.NoError(t, json.Unmarshal(transport.PublishedFor(constants.EventPushSubscription)[0], &req))
	assert.Equal(t, "BPub", req.ApplicationKey)
	assert.Equal(t, sub.Endpoint, req.Subscription.Endpoint)
}

func TestNotificationGW_Disconnected(t *testing.T) {
	transport := connection.NewMemoryTransport(false)
	manager := connection.NewManager(transport, models.ConnectionConfig{})
	t.Cleanup(func() { _ = manager.Close() })

	err := NewNotificationGW(manager).SyncSettings(models.NotificationSettingsUpdate{UserID: "alice"})

	assert.ErrorIs(t, err, models.ErrTransportUnavailable)
	assert.Empty(t, transport.Published())
}
