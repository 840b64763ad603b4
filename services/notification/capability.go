package notification

import (
	"context"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_capability.go -package=mocks github.com/piresc/crowdpulse/services/notification AlertSurface

// AlertSurface is the platform capability that shows accepted notifications
// outside the app
type AlertSurface interface {
	// RequestPermission asks the platform for permission to alert
	RequestPermission(ctx context.Context) (models.PermissionState, error)
	// ServerKey is the application server key subscriptions are bound to
	ServerKey() string
	Alert(ctx context.Context, sub models.PushSubscription, alert models.Alert) error
}
