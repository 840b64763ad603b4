package models

import "errors"

var (
	// ErrTransportUnavailable is reported when an emit happens while disconnected.
	// The payload is dropped; stores log it and never surface it to their callers.
	ErrTransportUnavailable = errors.New("transport unavailable")
	// ErrPermissionDenied is returned when geolocation, notification or privacy
	// permission is refused.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrRequestExpired is returned when a location share request is answered
	// after its TTL elapsed.
	ErrRequestExpired = errors.New("request expired")
	// ErrDataShapeMismatch marks an upstream payload missing expected fields.
	// Normalizers default to zero values instead of failing.
	ErrDataShapeMismatch = errors.New("data shape mismatch")

	ErrRequestNotFound      = errors.New("location request not found")
	ErrRequestResolved      = errors.New("location request already resolved")
	ErrEventNotFound        = errors.New("event not found")
	ErrRoomNotFound         = errors.New("chat room not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidLocation      = errors.New("invalid location coordinates")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrEmptyMessage         = errors.New("message body is empty")
	ErrSelfRequest          = errors.New("cannot target the local user")
	ErrNoPositionFix        = errors.New("no position fix available")
	ErrInvalidSubscription  = errors.New("push subscription endpoint is empty")
	ErrInvalidQuietHours    = errors.New("quiet hours must be HH:MM")
	// ErrSubscriptionGone is returned when the push service no longer knows
	// the subscription endpoint.
	ErrSubscriptionGone = errors.New("push subscription gone")
)
