package sharing

import (
	"context"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_capability.go -package=mocks github.com/piresc/crowdpulse/services/sharing Geolocator,FriendProvider

// Geolocator is the device geolocation capability
type Geolocator interface {
	CurrentPosition(ctx context.Context) (models.Position, error)
	// WatchPosition starts a continuous high-accuracy watch and returns its id
	WatchPosition(onPosition func(models.Position), onError func(error)) (int, error)
	ClearWatch(watchID int)
}

// FriendProvider answers friend-relationship queries for the friends
// privacy scope
type FriendProvider interface {
	IsFriend(userID string) bool
}
