package gateway

import (
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// NotificationGW implements notification.NotificationGW over the push channel
type NotificationGW struct {
	emitter connection.Emitter
}

// NewNotificationGW creates the notification gateway
func NewNotificationGW(emitter connection.Emitter) *NotificationGW {
	return &NotificationGW{emitter: emitter}
}

// SubscribePush emits push-subscription
func (g *NotificationGW) SubscribePush(req models.PushSubscriptionRequest) error {
	return g.emitter.Emit(constants.EventPushSubscription, req)
}

// UnsubscribePush emits push-unsubscribe
func (g *NotificationGW) UnsubscribePush(req models.PushUnsubscribe) error {
	return g.emitter.Emit(constants.EventPushUnsubscribe, req)
}

// SyncSettings emits notification-settings-update
func (g *NotificationGW) SyncSettings(update models.NotificationSettingsUpdate) error {
	return g.emitter.Emit(constants.EventNotificationSettingsUpdate, update)
}
