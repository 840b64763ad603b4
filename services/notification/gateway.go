package notification

import "github.com/piresc/crowdpulse/internal/pkg/models"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/crowdpulse/services/notification NotificationGW

// NotificationGW defines the outbound events of the notification store
type NotificationGW interface {
	SubscribePush(req models.PushSubscriptionRequest) error
	UnsubscribePush(req models.PushUnsubscribe) error
	SyncSettings(update models.NotificationSettingsUpdate) error
}
