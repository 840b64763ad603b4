package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/notification"
)

// PollerNotificationExpiry drops expired notifications
const PollerNotificationExpiry = "notification-expiry"

const defaultExpiryInterval = 60 * time.Second

// NotificationBusHandler feeds inbound notifications into the dispatch store
// and runs the expiry poller
type NotificationBusHandler struct {
	notificationUC notification.NotificationUC
	bus            connection.Subscriber
	scheduler      connection.Scheduler
	interval       time.Duration
	subs           []*connection.Subscription
}

// NewNotificationBusHandler creates a new notification bus handler
func NewNotificationBusHandler(notificationUC notification.NotificationUC, bus connection.Subscriber, scheduler connection.Scheduler, cfg models.NotificationConfig) *NotificationBusHandler {
	interval := cfg.ExpiryInterval
	if interval <= 0 {
		interval = defaultExpiryInterval
	}
	return &NotificationBusHandler{
		notificationUC: notificationUC,
		bus:            bus,
		scheduler:      scheduler,
		interval:       interval,
	}
}

// Init subscribes to the notification pushes and registers the expiry poller
func (h *NotificationBusHandler) Init() error {
	h.subs = append(h.subs,
		h.bus.Subscribe(constants.EventNotification, h.handleNotification),
		h.bus.Subscribe(constants.EventNotificationBatch, h.handleBatch),
	)

	if err := h.scheduler.Every(PollerNotificationExpiry, h.interval, h.notificationUC.ClearExpiredNotifications); err != nil {
		h.Dispose()
		return fmt.Errorf("failed to register %s poller: %w", PollerNotificationExpiry, err)
	}

	logger.Info("Notification bus handler initialized", logger.Duration("expiry_interval", h.interval))
	return nil
}

// Dispose cancels subscriptions and the poller
func (h *NotificationBusHandler) Dispose() {
	for _, sub := range h.subs {
		sub.Cancel()
	}
	h.subs = nil
	h.scheduler.CancelPoller(PollerNotificationExpiry)
}

func (h *NotificationBusHandler) handleNotification(payload []byte) error {
	var n models.PushNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	h.notificationUC.AddNotification(context.Background(), n)
	return nil
}

func (h *NotificationBusHandler) handleBatch(payload []byte) error {
	var batch models.NotificationBatch
	if err := json.Unmarshal(payload, &batch); err != nil {
		return fmt.Errorf("failed to unmarshal notification batch: %w", err)
	}
	accepted := h.notificationUC.ApplyBatch(context.Background(), batch)
	logger.Debug("Applied notification batch",
		logger.Int("received", len(batch.Notifications)),
		logger.Int("accepted", accepted))
	return nil
}
