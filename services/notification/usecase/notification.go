package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/notification"
)

const (
	maxQueuedNotifications = 100
	alertTimeout           = 10 * time.Second
)

var (
	vibrateDefault = []int{200}
	vibrateUrgent  = []int{300, 100, 300, 100, 300}
)

// NotificationUC implements notification.NotificationUC for one local user
type NotificationUC struct {
	gw      notification.NotificationGW
	surface notification.AlertSurface
	userID  string
	now     models.Clock

	mu           sync.RWMutex
	queue        []models.PushNotification
	businesses   map[string]models.BusinessNotification
	settings     models.NotificationSettings
	permission   models.PermissionState
	subscription *models.PushSubscription
}

// Option configures a NotificationUC
type Option func(*NotificationUC)

// WithClock overrides the clock used for admission and expiry
func WithClock(now models.Clock) Option {
	return func(uc *NotificationUC) { uc.now = now }
}

// NewNotificationUC creates the notification store of userID. surface may be
// nil, in which case permission is denied and nothing is alerted.
func NewNotificationUC(gw notification.NotificationGW, surface notification.AlertSurface, userID string, cfg models.NotificationConfig, opts ...Option) *NotificationUC {
	settings := models.DefaultNotificationSettings()
	if cfg.DefaultRadiusKm > 0 {
		settings.DefaultRadiusKm = cfg.DefaultRadiusKm
	}
	uc := &NotificationUC{
		gw:         gw,
		surface:    surface,
		userID:     userID,
		now:        models.Now,
		businesses: make(map[string]models.BusinessNotification),
		settings:   settings,
		permission: models.PermissionDefault,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ShouldShow applies the admission rules to n under the current settings
func (uc *NotificationUC) ShouldShow(n models.PushNotification) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return admit(uc.settings, n, uc.now())
}

// admit checks the master switch and the type switch first. Urgent
// notifications skip the quiet hours check; inside quiet hours only high
// priority passes.
func admit(settings models.NotificationSettings, n models.PushNotification, now time.Time) bool {
	if !settings.Enabled {
		return false
	}
	if enabled, ok := settings.Types[n.Type]; ok && !enabled {
		return false
	}
	if n.Priority == models.PriorityUrgent {
		return true
	}
	if inQuietHours(settings.QuietHours, now) {
		return n.Priority == models.PriorityHigh
	}
	return true
}

func inQuietHours(q models.QuietHours, now time.Time) bool {
	if !q.Enabled {
		return false
	}
	start, err := models.MinutesOfDay(q.Start)
	if err != nil {
		return false
	}
	end, err := models.MinutesOfDay(q.End)
	if err != nil {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	switch {
	case start == end:
		return false
	case start < end:
		return minute >= start && minute < end
	default:
		return minute >= start || minute < end
	}
}

// AddNotification admits n, prepends it to the queue and raises an alert.
// It returns the stored notification and whether it was accepted.
func (uc *NotificationUC) AddNotification(ctx context.Context, n models.PushNotification) (models.PushNotification, bool) {
	now := uc.now()
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = now
	}
	if n.Priority == "" {
		n.Priority = models.PriorityNormal
	}
	if expired(n, now) {
		logger.Debug("Dropping notification expired on arrival", logger.String("notification_id", n.ID))
		return n, false
	}

	uc.mu.Lock()
	if !admit(uc.settings, n, now) {
		uc.mu.Unlock()
		logger.Debug("Notification suppressed",
			logger.String("notification_id", n.ID),
			logger.String("type", string(n.Type)),
			logger.String("priority", string(n.Priority)))
		return n, false
	}
	for _, queued := range uc.queue {
		if queued.ID == n.ID {
			uc.mu.Unlock()
			return copyNotification(queued), false
		}
	}

	uc.queue = append([]models.PushNotification{copyNotification(n)}, uc.queue...)
	if len(uc.queue) > maxQueuedNotifications {
		uc.queue = uc.queue[:maxQueuedNotifications]
	}
	alert := uc.alertLocked(n)
	uc.mu.Unlock()

	if alert != nil {
		uc.deliver(ctx, alert)
	}
	return n, true
}

// ApplyBatch adds every notification of a batch and returns how many were
// accepted
func (uc *NotificationUC) ApplyBatch(ctx context.Context, batch models.NotificationBatch) int {
	accepted := 0
	for _, n := range batch.Notifications {
		if _, ok := uc.AddNotification(ctx, n); ok {
			accepted++
		}
	}
	return accepted
}

type pendingAlert struct {
	sub   models.PushSubscription
	alert models.Alert
}

func (uc *NotificationUC) alertLocked(n models.PushNotification) *pendingAlert {
	if uc.surface == nil || uc.permission != models.PermissionGranted || uc.subscription == nil {
		return nil
	}
	return &pendingAlert{sub: *uc.subscription, alert: BuildAlert(uc.settings, n)}
}

// BuildAlert shapes the alert of n. Urgent alerts vibrate harder and stay on
// screen until dismissed.
func BuildAlert(settings models.NotificationSettings, n models.PushNotification) models.Alert {
	alert := models.Alert{
		Notification:       copyNotification(n),
		Silent:             !settings.Sound,
		RequireInteraction: n.Priority == models.PriorityUrgent,
	}
	if settings.Vibration {
		if n.Priority == models.PriorityUrgent {
			alert.Vibrate = append([]int(nil), vibrateUrgent...)
		} else {
			alert.Vibrate = append([]int(nil), vibrateDefault...)
		}
	}
	return alert
}

func (uc *NotificationUC) deliver(ctx context.Context, p *pendingAlert) {
	ctx, cancel := context.WithTimeout(ctx, alertTimeout)
	defer cancel()

	err := uc.surface.Alert(ctx, p.sub, p.alert)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrSubscriptionGone):
		logger.Warn("Push subscription gone, dropping it", logger.String("endpoint", p.sub.Endpoint))
		uc.mu.Lock()
		if uc.subscription != nil && uc.subscription.Endpoint == p.sub.Endpoint {
			uc.subscription = nil
		}
		uc.mu.Unlock()
	default:
		logger.Warn("Failed to deliver alert",
			logger.String("notification_id", p.alert.Notification.ID),
			logger.Err(err))
	}
}

// GetNotifications returns the queue, most recent first
func (uc *NotificationUC) GetNotifications() []models.PushNotification {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]models.PushNotification, len(uc.queue))
	for i, n := range uc.queue {
		out[i] = copyNotification(n)
	}
	return out
}

// UnreadCount returns how many queued notifications are unread
func (uc *NotificationUC) UnreadCount() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	unread := 0
	for _, n := range uc.queue {
		if !n.IsRead {
			unread++
		}
	}
	return unread
}

// MarkAsRead flags one notification as read
func (uc *NotificationUC) MarkAsRead(notificationID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.queue {
		if uc.queue[i].ID == notificationID {
			uc.queue[i].IsRead = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", models.ErrNotificationNotFound, notificationID)
}

// MarkAllAsRead flags the whole queue as read and returns how many changed
func (uc *NotificationUC) MarkAllAsRead() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	changed := 0
	for i := range uc.queue {
		if !uc.queue[i].IsRead {
			uc.queue[i].IsRead = true
			changed++
		}
	}
	return changed
}

// RemoveNotification drops one notification from the queue
func (uc *NotificationUC) RemoveNotification(notificationID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, n := range uc.queue {
		if n.ID == notificationID {
			uc.queue = append(uc.queue[:i], uc.queue[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", models.ErrNotificationNotFound, notificationID)
}

// ClearAll empties the queue
func (uc *NotificationUC) ClearAll() {
	uc.mu.Lock()
	uc.queue = nil
	uc.mu.Unlock()
}

// ClearExpiredNotifications drops queued notifications past their expiry and
// business notifications past their validity
func (uc *NotificationUC) ClearExpiredNotifications(ctx context.Context) error {
	now := uc.now()

	uc.mu.Lock()
	kept := uc.queue[:0]
	for _, n := range uc.queue {
		if !expired(n, now) {
			kept = append(kept, n)
		}
	}
	dropped := len(uc.queue) - len(kept)
	for i := len(kept); i < len(uc.queue); i++ {
		uc.queue[i] = models.PushNotification{}
	}
	uc.queue = kept

	retired := 0
	for id, bn := range uc.businesses {
		if businessExpired(bn, now) {
			delete(uc.businesses, id)
			retired++
		}
	}
	uc.mu.Unlock()

	if dropped > 0 || retired > 0 {
		logger.Debug("Cleared expired notifications",
			logger.Int("notifications", dropped),
			logger.Int("business_notifications", retired))
	}
	return nil
}

func expired(n models.PushNotification, now time.Time) bool {
	return n.ExpiresAt != nil && now.After(*n.ExpiresAt)
}

// GetSettings returns a copy of the notification settings
func (uc *NotificationUC) GetSettings() models.NotificationSettings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return copySettings(uc.settings)
}

// UpdateSettings replaces the settings and syncs them upstream. Missing
// type switches and a non-positive radius keep their current values.
func (uc *NotificationUC) UpdateSettings(settings models.NotificationSettings) error {
	if settings.QuietHours.Enabled {
		if _, err := models.MinutesOfDay(settings.QuietHours.Start); err != nil {
			return fmt.Errorf("%w: start %q", models.ErrInvalidQuietHours, settings.QuietHours.Start)
		}
		if _, err := models.MinutesOfDay(settings.QuietHours.End); err != nil {
			return fmt.Errorf("%w: end %q", models.ErrInvalidQuietHours, settings.QuietHours.End)
		}
	}

	uc.mu.Lock()
	types := make(map[models.NotificationType]bool, len(uc.settings.Types))
	for k, v := range uc.settings.Types {
		types[k] = v
	}
	for k, v := range settings.Types {
		types[k] = v
	}
	settings.Types = types
	if settings.DefaultRadiusKm <= 0 {
		settings.DefaultRadiusKm = uc.settings.DefaultRadiusKm
	}
	uc.settings = settings
	update := models.NotificationSettingsUpdate{UserID: uc.userID, Settings: copySettings(settings)}
	uc.mu.Unlock()

	return emit(uc.gw.SyncSettings(update), "notification settings")
}

// emit swallows a dropped emit; the manager has already logged it
func emit(err error, what string) error {
	if err == nil || errors.Is(err, models.ErrTransportUnavailable) {
		return nil
	}
	return fmt.Errorf("failed to emit %s: %w", what, err)
}

func copySettings(s models.NotificationSettings) models.NotificationSettings {
	types := make(map[models.NotificationType]bool, len(s.Types))
	for k, v := range s.Types {
		types[k] = v
	}
	s.Types = types
	return s
}

func copyNotification(n models.PushNotification) models.PushNotification {
	if n.ExpiresAt != nil {
		expiresAt := *n.ExpiresAt
		n.ExpiresAt = &expiresAt
	}
	if n.Action != nil {
		action := *n.Action
		n.Action = &action
	}
	if n.Data != nil {
		data := make(map[string]string, len(n.Data))
		for k, v := range n.Data {
			data[k] = v
		}
		n.Data = data
	}
	return n
}
