package sharing

import "github.com/piresc/crowdpulse/internal/pkg/models"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/crowdpulse/services/sharing SharingGW

// SharingGW defines the outbound events of the sharing store
type SharingGW interface {
	ShareLocation(loc models.SharedLocation) error
	StopSharing(stopped models.SharingStopped) error
	SendLocationRequest(req models.LocationShareRequest) error
	RespondLocationRequest(resp models.LocationRequestResponse) error
}
