package models

import "time"

// Coordinates represents a geographical point with latitude and longitude
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates are inside the WGS84 range
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Position is a fix delivered by the geolocation capability
type Position struct {
	Coordinates Coordinates `json:"coordinates"`
	Accuracy    float64     `json:"accuracy"`
	Heading     *float64    `json:"heading,omitempty"`
	Speed       *float64    `json:"speed,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

// SharedLocation is a user's broadcast position. Optional fields are only
// populated when the owner's privacy settings allow it.
type SharedLocation struct {
	UserID      string      `json:"user_id"`
	Coordinates Coordinates `json:"coordinates"`
	Timestamp   time.Time   `json:"timestamp"`
	Accuracy    *float64    `json:"accuracy,omitempty"`
	Heading     *float64    `json:"heading,omitempty"`
	Speed       *float64    `json:"speed,omitempty"`
	Approximate bool        `json:"approximate,omitempty"`
}

// RequestStatus of a location share request. Transitions only leave pending.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
	RequestExpired  RequestStatus = "expired"
)

// LocationShareRequest asks a peer to start sharing their location
type LocationShareRequest struct {
	ID         string        `json:"id"`
	FromUserID string        `json:"from_user_id"`
	ToUserID   string        `json:"to_user_id"`
	Message    string        `json:"message,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
	ExpiresAt  time.Time     `json:"expires_at"`
	Status     RequestStatus `json:"status"`
}

// LocationRequestResponse answers a LocationShareRequest
type LocationRequestResponse struct {
	RequestID  string    `json:"request_id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Accepted   bool      `json:"accepted"`
	Timestamp  time.Time `json:"timestamp"`
}

// SharingStopped tells peers to evict a user from their caches
type SharingStopped struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ShareScope selects who may see the local user's location
type ShareScope string

const (
	ShareWithNone    ShareScope = "none"
	ShareWithFriends ShareScope = "friends"
	ShareWithAll     ShareScope = "all"
)

// PrivacySettings controls location visibility and field redaction
type PrivacySettings struct {
	Scope           ShareScope    `json:"scope"`
	AllowList       []string      `json:"allow_list,omitempty"`
	BlockList       []string      `json:"block_list,omitempty"`
	ShareAccuracy   bool          `json:"share_accuracy"`
	ShareHeading    bool          `json:"share_heading"`
	ShareSpeed      bool          `json:"share_speed"`
	PreciseLocation bool          `json:"precise_location"`
	AutoExpireAfter time.Duration `json:"auto_expire_after"`
}

// DefaultPrivacySettings returns the settings a new user starts with
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		Scope:           ShareWithFriends,
		ShareAccuracy:   true,
		ShareHeading:    false,
		ShareSpeed:      false,
		PreciseLocation: true,
	}
}

// NearbyUser is a cached peer together with its distance from a query origin
type NearbyUser struct {
	Location   SharedLocation `json:"location"`
	DistanceKm float64        `json:"distance_km"`
}
