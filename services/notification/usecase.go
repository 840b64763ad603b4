package notification

import (
	"context"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/crowdpulse/services/notification NotificationUC

// NotificationUC defines the notification dispatch store
type NotificationUC interface {
	// Queue
	AddNotification(ctx context.Context, n models.PushNotification) (models.PushNotification, bool)
	ApplyBatch(ctx context.Context, batch models.NotificationBatch) int
	GetNotifications() []models.PushNotification
	UnreadCount() int
	MarkAsRead(notificationID string) error
	MarkAllAsRead() int
	RemoveNotification(notificationID string) error
	ClearAll()
	ClearExpiredNotifications(ctx context.Context) error
	ShouldShow(n models.PushNotification) bool

	// Business notifications
	AddBusinessNotification(ctx context.Context, bn models.BusinessNotification) (models.BusinessNotification, error)
	GetBusinessNotifications() []models.BusinessNotification
	GetNearbyBusinessNotifications(origin models.Coordinates, radiusKm float64) []models.NearbyBusinessNotification

	// Settings
	GetSettings() models.NotificationSettings
	UpdateSettings(settings models.NotificationSettings) error

	// Permission and push subscription
	Permission() models.PermissionState
	RequestPermission(ctx context.Context) (models.PermissionState, error)
	SubscribeToPush(ctx context.Context, sub models.PushSubscription) error
	UnsubscribeFromPush() error
	CurrentSubscription() (models.PushSubscription, bool)
}
