package sharing

import (
	"context"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/crowdpulse/services/sharing SharingUC

// SharingUC defines the live location sharing store
type SharingUC interface {
	// Self broadcast
	StartLocationSharing(ctx context.Context) error
	StopLocationSharing() error
	IsSharing() bool
	UpdateMyLocation(pos models.Position) error
	MyLocation() (models.SharedLocation, bool)

	// Peer cache
	ApplyPeerLocation(loc models.SharedLocation)
	ApplySharingStopped(stopped models.SharingStopped)
	GetPeerLocation(userID string) (models.SharedLocation, bool)
	GetPeerLocations() []models.SharedLocation

	// Handshake
	SendLocationRequest(toUserID, message string) (models.LocationShareRequest, error)
	ReceiveLocationRequest(req models.LocationShareRequest)
	AcceptLocationRequest(ctx context.Context, requestID string) error
	DeclineLocationRequest(requestID string) error
	ApplyRequestResponse(resp models.LocationRequestResponse)
	CleanupExpiredRequests(ctx context.Context) error
	GetRequests() []models.LocationShareRequest

	// Privacy
	GetPrivacySettings() models.PrivacySettings
	UpdatePrivacySettings(settings models.PrivacySettings)
	CanShareWith(userID string) bool

	// Geoqueries
	GetDistanceToUser(userID string) (float64, bool)
	GetNearbyUsers(origin models.Coordinates, radiusKm float64) []models.NearbyUser
}
