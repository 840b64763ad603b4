package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

const defaultPushTTL = 60

// WebPushSurface implements notification.AlertSurface with VAPID web push
type WebPushSurface struct {
	keys       VAPIDKeys
	subscriber string
	ttl        int
	client     webpush.HTTPClient
}

// WebPushOption configures a WebPushSurface
type WebPushOption func(*WebPushSurface)

// WithHTTPClient overrides the client used to reach push services
func WithHTTPClient(client webpush.HTTPClient) WebPushOption {
	return func(s *WebPushSurface) { s.client = client }
}

// NewWebPushSurface creates a web push alert surface
func NewWebPushSurface(keys VAPIDKeys, cfg models.PushConfig, opts ...WebPushOption) *WebPushSurface {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultPushTTL
	}
	s := &WebPushSurface{
		keys:       keys,
		subscriber: cfg.Subscriber,
		ttl:        ttl,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestPermission grants alerts only when a VAPID key pair is loaded
func (s *WebPushSurface) RequestPermission(ctx context.Context) (models.PermissionState, error) {
	if err := ctx.Err(); err != nil {
		return models.PermissionDefault, err
	}
	if !s.keys.complete() {
		return models.PermissionDenied, nil
	}
	return models.PermissionGranted, nil
}

// ServerKey returns the VAPID public key
func (s *WebPushSurface) ServerKey() string {
	return s.keys.PublicKey
}

// Alert encrypts the alert and posts it to the subscription endpoint
func (s *WebPushSurface) Alert(ctx context.Context, sub models.PushSubscription, alert models.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.keys.PublicKey,
		VAPIDPrivateKey: s.keys.PrivateKey,
		TTL:             s.ttl,
		Urgency:         urgency(alert.Notification.Priority),
	})
	if err != nil {
		return fmt.Errorf("failed to send web push: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGone, resp.StatusCode == http.StatusNotFound:
		return models.ErrSubscriptionGone
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("push service responded with status %d", resp.StatusCode)
	}
	return nil
}

func urgency(priority models.NotificationPriority) webpush.Urgency {
	switch priority {
	case models.PriorityLow:
		return webpush.UrgencyLow
	case models.PriorityHigh, models.PriorityUrgent:
		return webpush.UrgencyHigh
	default:
		return webpush.UrgencyNormal
	}
}
