package models

import "time"

// EventStatus is the lifecycle state of a live event
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventLive      EventStatus = "live"
	EventEnded     EventStatus = "ended"
	EventCancelled EventStatus = "cancelled"
	EventPostponed EventStatus = "postponed"
)

// PriceRange is the ticket price span of an event
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
}

// EventSocial holds the social counters of an event
type EventSocial struct {
	Checkins      int     `json:"checkins"`
	Shares        int     `json:"shares"`
	Comments      int     `json:"comments"`
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`
}

// LiveEvent is a cached event keyed by ID
type LiveEvent struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Venue       string      `json:"venue"`
	Organizer   string      `json:"organizer"`
	Tags        []string    `json:"tags,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Status      EventStatus `json:"status"`
	StartTime   time.Time   `json:"start_time"`
	EndTime     time.Time   `json:"end_time"`
	Attendance  int         `json:"attendance"`
	Capacity    int         `json:"capacity"`
	CrowdLevel  CrowdLevel  `json:"crowd_level"`
	Pricing     *PriceRange `json:"pricing,omitempty"`
	Social      EventSocial `json:"social"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// EventUpdateType classifies entries of the update feed
type EventUpdateType string

const (
	UpdateStatusChange EventUpdateType = "status_change"
	UpdateAnnouncement EventUpdateType = "announcement"
	UpdateCapacity     EventUpdateType = "capacity"
	UpdateCheckin      EventUpdateType = "checkin"
	UpdateComment      EventUpdateType = "comment"
	UpdateShare        EventUpdateType = "share"
	UpdateRating       EventUpdateType = "rating"
	UpdateDetails      EventUpdateType = "details"
)

// UpdatePriority ranks update feed entries
type UpdatePriority string

const (
	UpdatePriorityLow    UpdatePriority = "low"
	UpdatePriorityMedium UpdatePriority = "medium"
	UpdatePriorityHigh   UpdatePriority = "high"
)

// EventUpdate is a feed entry for one event. Event, when present, is an
// authoritative snapshot that replaces the cached copy.
type EventUpdate struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id"`
	Type      EventUpdateType `json:"type"`
	Priority  UpdatePriority  `json:"priority"`
	Message   string          `json:"message,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Event     *LiveEvent      `json:"event,omitempty"`
}

// EventFilters narrows the cached events. Empty fields match everything.
type EventFilters struct {
	Categories  []string      `json:"categories,omitempty"`
	Statuses    []EventStatus `json:"statuses,omitempty"`
	From        time.Time     `json:"from,omitempty"`
	To          time.Time     `json:"to,omitempty"`
	Origin      *Coordinates  `json:"origin,omitempty"`
	RadiusKm    float64       `json:"radius_km,omitempty"`
	MinPrice    *float64      `json:"min_price,omitempty"`
	MaxPrice    *float64      `json:"max_price,omitempty"`
	CrowdLevels []CrowdLevel  `json:"crowd_levels,omitempty"`
}

// EventSubscription is emitted on subscribe-events and unsubscribe-events
type EventSubscription struct {
	EventIDs []string `json:"event_ids"`
	UserID   string   `json:"user_id"`
}

// EventCapacityUpdate is pushed when attendance changes
type EventCapacityUpdate struct {
	EventID    string     `json:"event_id"`
	Attendance int        `json:"attendance"`
	Capacity   int        `json:"capacity"`
	CrowdLevel CrowdLevel `json:"crowd_level,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// EventInteraction carries checkin, share, comment and rate actions
type EventInteraction struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Platform  string    `json:"platform,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OpStatus is the reconciliation state of an optimistic interaction
type OpStatus string

const (
	OpPending    OpStatus = "pending"
	OpRolledBack OpStatus = "rolled_back"
)

// PendingOp is an interaction applied to the local cache before the next
// authoritative snapshot of its event arrives
type PendingOp struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id"`
	Kind      EventUpdateType `json:"kind"`
	Rating    int             `json:"rating,omitempty"`
	Status    OpStatus        `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
