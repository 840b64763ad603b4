package events

import "github.com/piresc/crowdpulse/internal/pkg/models"

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/crowdpulse/services/events EventsUC

// EventsUC defines the event tracking store
type EventsUC interface {
	// Cache
	UpsertEvents(events []models.LiveEvent) int
	GetEvent(eventID string) (models.LiveEvent, bool)
	GetEvents() []models.LiveEvent

	// Views
	FilterEvents(filters models.EventFilters) []models.LiveEvent
	GetUpcomingEvents(limit int) []models.LiveEvent
	GetLiveEvents() []models.LiveEvent
	GetPopularEvents(limit int) []models.LiveEvent
	SearchEvents(query string) []models.LiveEvent

	// Tracking
	SubscribeToEvents(eventIDs []string) error
	UnsubscribeFromEvents(eventIDs []string) error
	TrackedEvents() []string
	GetMyUpdates() []models.EventUpdate
	GetEventUpdates(eventID string) []models.EventUpdate

	// Optimistic interactions
	ShareEvent(eventID, platform string) (models.PendingOp, error)
	CheckIn(eventID string) (models.PendingOp, error)
	RateEvent(eventID string, rating int) (models.PendingOp, error)
	AddComment(eventID, comment string) (models.PendingOp, error)
	GetPendingOps(eventID string) []models.PendingOp

	// Inbound
	ApplyEventUpdate(update models.EventUpdate)
	ApplyAnnouncement(update models.EventUpdate)
	ApplyInteraction(kind models.EventUpdateType, in models.EventInteraction)
	ApplyCapacityUpdate(update models.EventCapacityUpdate)
}
