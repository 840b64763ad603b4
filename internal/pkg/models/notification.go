package models

import "time"

// NotificationType groups notifications for per-type switches
type NotificationType string

const (
	NotificationCrowdAlert NotificationType = "crowd_alert"
	NotificationEvent      NotificationType = "event"
	NotificationMessage    NotificationType = "message"
	NotificationLocation   NotificationType = "location"
	NotificationBusiness   NotificationType = "business"
	NotificationSystem     NotificationType = "system"
)

// NotificationPriority orders notifications and drives quiet-hours bypass
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// NotificationAction is an optional call-to-action attached to a notification
type NotificationAction struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PushNotification is an entry of the local notification queue
type PushNotification struct {
	ID        string               `json:"id"`
	Type      NotificationType     `json:"type"`
	Title     string               `json:"title"`
	Body      string               `json:"body"`
	Priority  NotificationPriority `json:"priority"`
	Timestamp time.Time            `json:"timestamp"`
	IsRead    bool                 `json:"is_read"`
	ExpiresAt *time.Time           `json:"expires_at,omitempty"`
	Action    *NotificationAction  `json:"action,omitempty"`
	Data      map[string]string    `json:"data,omitempty"`
}

// Geofence is a circular area around a coordinate
type Geofence struct {
	Center   Coordinates `json:"center"`
	RadiusKm float64     `json:"radius_km"`
}

// BusinessNotification is a venue campaign bound to an optional geofence
type BusinessNotification struct {
	PushNotification
	BusinessID string    `json:"business_id"`
	Geofence   *Geofence `json:"geofence,omitempty"`
	ValidUntil time.Time `json:"valid_until"`
	IsActive   bool      `json:"is_active"`
}

// NearbyBusinessNotification pairs a business notification with its distance
type NearbyBusinessNotification struct {
	Notification BusinessNotification `json:"notification"`
	DistanceKm   float64              `json:"distance_km"`
}

// QuietHours is a daily HH:MM window. Start after End wraps past midnight.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// NotificationSettings holds the local user's notification preferences
type NotificationSettings struct {
	Enabled         bool                      `json:"enabled"`
	Types           map[NotificationType]bool `json:"types"`
	QuietHours      QuietHours                `json:"quiet_hours"`
	Sound           bool                      `json:"sound"`
	Vibration       bool                      `json:"vibration"`
	DefaultRadiusKm float64                   `json:"default_radius_km"`
}

// DefaultNotificationSettings returns the settings a new user starts with
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled: true,
		Types: map[NotificationType]bool{
			NotificationCrowdAlert: true,
			NotificationEvent:      true,
			NotificationMessage:    true,
			NotificationLocation:   true,
			NotificationBusiness:   true,
			NotificationSystem:     true,
		},
		QuietHours:      QuietHours{Enabled: false, Start: "22:00", End: "07:00"},
		Sound:           true,
		Vibration:       true,
		DefaultRadiusKm: 5,
	}
}

// PermissionState mirrors the notification permission of the host platform
type PermissionState string

const (
	PermissionDefault PermissionState = "default"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

// PushSubscription is a web push endpoint registered by a client
type PushSubscription struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// PushSubscriptionRequest is emitted on push-subscription
type PushSubscriptionRequest struct {
	UserID         string           `json:"user_id"`
	Subscription   PushSubscription `json:"subscription"`
	ApplicationKey string           `json:"application_server_key"`
}

// NotificationBatch is pushed on notification-batch
type NotificationBatch struct {
	Notifications []PushNotification `json:"notifications"`
}

// PushUnsubscribe is emitted on push-unsubscribe
type PushUnsubscribe struct {
	UserID   string `json:"user_id"`
	Endpoint string `json:"endpoint"`
}

// NotificationSettingsUpdate is emitted on notification-settings-update
type NotificationSettingsUpdate struct {
	UserID   string               `json:"user_id"`
	Settings NotificationSettings `json:"settings"`
}

// Alert is what the alert surface delivers for an accepted notification
type Alert struct {
	Notification PushNotification `json:"notification"`
	Vibrate      []int            `json:"vibrate,omitempty"`
	Silent       bool             `json:"silent"`
	// RequireInteraction keeps urgent alerts on screen until dismissed
	RequireInteraction bool `json:"require_interaction"`
}
