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

func TestSharingGW_EventNames(t *testing.T) {
	transport := connection.NewMemoryTransport(false)
	manager := connection.NewManager(transport, models.ConnectionConfig{})
	t.Cleanup(func() { _ = manager.Close() })
	require.NoError(t, manager.Connect(context.Background()))

	gw := NewSharingGW(manager)

	require.NoError(t, gw.ShareLocation(models.SharedLocation{UserID: "alice", Coordinates: models.Coordinates{Latitude: -6.2, Longitude: 106.8}}))
	require.NoError(t, gw.SendLocationRequest(models.LocationShareRequest{ID: "r1", FromUserID: "alice", ToUserID: "bob"}))
	require.NoError(t, gw.RespondLocationRequest(models.LocationRequestResponse{RequestID: "r2", Accepted: true}))
	require.NoError(t, gw.StopSharing(models.SharingStopped{UserID: "alice"}))

	var events []string
	for _, p := range transport.Published() {
		events = append(events, p.Event)
	}
	assert.Equal(t, []string{
		constants.EventShareLocation,
		constants.EventSendLocationRequest,
		constants.EventRespondLocationRequest,
		constants.EventStopLocationSharing,
	}, events)

	var loc models.SharedLocation
	require.NoError(t, json.Unmarshal(transport.PublishedFor(constants.EventShareLocation)[0], &loc))
	assert.Equal(t, "alice", loc.UserID)
	assert.Nil(t, loc.Heading)

	var resp models.LocationRequestResponse
	require.NoError(t, json.Unmarshal(transport.PublishedFor(constants.EventRespondLocationRequest)[0], &resp))
	assert.True(t, resp.Accepted)
}

func TestSharingGW_Disconnected(t *testing.T) {
	manager := connection.NewManager(connection.NewMemoryTransport(false), models.ConnectionConfig{})
	gw := NewSharingGW(manager)

	assert.ErrorIs(t, gw.StopSharing(models.SharingStopped{UserID: "alice"}), models.ErrTransportUnavailable)
}
