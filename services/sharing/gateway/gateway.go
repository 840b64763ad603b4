package gateway

import (
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// SharingGW implements sharing.SharingGW over the push channel
type SharingGW struct {
	emitter connection.Emitter
}

// NewSharingGW creates the sharing gateway
func NewSharingGW(emitter connection.Emitter) *SharingGW {
	return &SharingGW{emitter: emitter}
}

// ShareLocation emits share-location
func (g *SharingGW) ShareLocation(loc models.SharedLocation) error {
	return g.emitter.Emit(constants.EventShareLocation, loc)
}

// StopSharing emits stop-location-sharing
func (g *SharingGW) StopSharing(stopped models.SharingStopped) error {
	return g.emitter.Emit(constants.EventStopLocationSharing, stopped)
}

// SendLocationRequest emits send-location-request
func (g *SharingGW) SendLocationRequest(req models.LocationShareRequest) error {
	return g.emitter.Emit(constants.EventSendLocationRequest, req)
}

// RespondLocationRequest emits respond-location-request
func (g *SharingGW) RespondLocationRequest(resp models.LocationRequestResponse) error {
	return g.emitter.Emit(constants.EventRespondLocationRequest, resp)
}
