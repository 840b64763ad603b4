package usecase

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/events"
)

const (
	defaultViewLimit    = 10
	maxUpdatesPerEvent  = 100
	announcementDefault = models.UpdatePriorityMedium
)

// EventsUC implements events.EventsUC for one local user
type EventsUC struct {
	gw     events.EventsGW
	userID string
	now    models.Clock

	mu      sync.RWMutex
	events  map[string]models.LiveEvent
	tracked map[string]struct{}
	updates map[string][]models.EventUpdate
	pending map[string][]models.PendingOp
}

// Option configures an EventsUC
type Option func(*EventsUC)

// WithClock overrides the clock used for stamps and the upcoming view
func WithClock(now models.Clock) Option {
	return func(uc *EventsUC) { uc.now = now }
}

// NewEventsUC creates the event tracking store of userID
func NewEventsUC(gw events.EventsGW, userID string, opts ...Option) *EventsUC {
	uc := &EventsUC{
		gw:      gw,
		userID:  userID,
		now:     models.Now,
		events:  make(map[string]models.LiveEvent),
		tracked: make(map[string]struct{}),
		updates: make(map[string][]models.EventUpdate),
		pending: make(map[string][]models.PendingOp),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// UpsertEvents replaces cached events by id and returns how many were
// stored. Each stored snapshot confirms the pending interactions of its event.
func (uc *EventsUC) UpsertEvents(list []models.LiveEvent) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	stored := 0
	for _, event := range list {
		if event.ID == "" {
			continue
		}
		uc.storeLocked(event)
		uc.confirmLocked(event.ID)
		stored++
	}
	return stored
}

func (uc *EventsUC) confirmLocked(eventID string) {
	confirmed := len(uc.pending[eventID])
	if confirmed == 0 {
		return
	}
	delete(uc.pending, eventID)
	logger.Debug("Confirmed pending interactions",
		logger.String("event_id", eventID),
		logger.Int("count", confirmed))
}

func (uc *EventsUC) storeLocked(event models.LiveEvent) {
	if event.UpdatedAt.IsZero() {
		event.UpdatedAt = uc.now()
	}
	uc.events[event.ID] = copyEvent(event)
}

// GetEvent returns a copy of one cached event
func (uc *EventsUC) GetEvent(eventID string) (models.LiveEvent, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	event, ok := uc.events[eventID]
	if !ok {
		return models.LiveEvent{}, false
	}
	return copyEvent(event), true
}

// GetEvents returns every cached event, ascending by start time
func (uc *EventsUC) GetEvents() []models.LiveEvent {
	out := uc.snapshot()
	sortByStart(out)
	return out
}

func (uc *EventsUC) snapshot() []models.LiveEvent {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]models.LiveEvent, 0, len(uc.events))
	for _, event := range uc.events {
		out = append(out, copyEvent(event))
	}
	return out
}

// SubscribeToEvents tracks the events and asks for their pushes
func (uc *EventsUC) SubscribeToEvents(eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	uc.mu.Lock()
	for _, id := range eventIDs {
		uc.tracked[id] = struct{}{}
	}
	uc.mu.Unlock()

	return uc.emit(uc.gw.SubscribeEvents(models.EventSubscription{EventIDs: eventIDs, UserID: uc.userID}))
}

// UnsubscribeFromEvents stops tracking the events
func (uc *EventsUC) UnsubscribeFromEvents(eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	uc.mu.Lock()
	for _, id := range eventIDs {
		delete(uc.tracked, id)
	}
	uc.mu.Unlock()

	return uc.emit(uc.gw.UnsubscribeEvents(models.EventSubscription{EventIDs: eventIDs, UserID: uc.userID}))
}

// TrackedEvents returns the tracked event ids, sorted
func (uc *EventsUC) TrackedEvents() []string {
	uc.mu.RLock()
	out := make([]string, 0, len(uc.tracked))
	for id := range uc.tracked {
		out = append(out, id)
	}
	uc.mu.RUnlock()

	sort.Strings(out)
	return out
}

// GetMyUpdates returns every update of the tracked events, newest first
func (uc *EventsUC) GetMyUpdates() []models.EventUpdate {
	uc.mu.RLock()
	var out []models.EventUpdate
	for id := range uc.tracked {
		out = append(out, uc.updates[id]...)
	}
	uc.mu.RUnlock()

	sortNewestFirst(out)
	return out
}

// GetEventUpdates returns the update feed of one event, newest first
func (uc *EventsUC) GetEventUpdates(eventID string) []models.EventUpdate {
	uc.mu.RLock()
	out := append([]models.EventUpdate(nil), uc.updates[eventID]...)
	uc.mu.RUnlock()

	sortNewestFirst(out)
	return out
}

// ApplyEventUpdate records a feed entry. A carried snapshot replaces the
// cached event and confirms its pending interactions.
func (uc *EventsUC) ApplyEventUpdate(update models.EventUpdate) {
	if update.EventID == "" && update.Event != nil {
		update.EventID = update.Event.ID
	}
	if update.EventID == "" {
		logger.Warn("Dropping event update without event id")
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if snapshot := update.Event; snapshot != nil {
		snapshot.ID = update.EventID
		previous, known := uc.events[update.EventID]
		uc.storeLocked(*snapshot)
		uc.confirmLocked(update.EventID)
		if update.Type == "" && known && previous.Status != snapshot.Status {
			update.Type = models.UpdateStatusChange
			update.Priority = models.UpdatePriorityHigh
			update.Message = fmt.Sprintf("%s is now %s", snapshot.Title, snapshot.Status)
		}
	}
	if update.Type == "" {
		update.Type = models.UpdateDetails
	}
	uc.recordLocked(update)
}

// ApplyAnnouncement records an organizer announcement
func (uc *EventsUC) ApplyAnnouncement(update models.EventUpdate) {
	if update.EventID == "" {
		logger.Warn("Dropping announcement without event id")
		return
	}
	update.Type = models.UpdateAnnouncement
	if update.Priority == "" {
		update.Priority = announcementDefault
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.recordLocked(update)
}

// ApplyCapacityUpdate sets the attendance of a cached event
func (uc *EventsUC) ApplyCapacityUpdate(update models.EventCapacityUpdate) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	event, ok := uc.events[update.EventID]
	if !ok {
		logger.Debug("Ignoring capacity update for unknown event", logger.String("event_id", update.EventID))
		return
	}

	event.Attendance = update.Attendance
	if update.Capacity > 0 {
		event.Capacity = update.Capacity
	}
	switch {
	case update.CrowdLevel.Valid():
		event.CrowdLevel = update.CrowdLevel
	case event.Capacity > 0:
		event.CrowdLevel = LevelFromOccupancy(event.Attendance, event.Capacity)
	}
	event.UpdatedAt = uc.now()
	uc.events[event.ID] = event

	uc.recordLocked(models.EventUpdate{
		EventID:   event.ID,
		Type:      models.UpdateCapacity,
		Priority:  models.UpdatePriorityLow,
		Message:   fmt.Sprintf("%d of %d attending", event.Attendance, event.Capacity),
		Timestamp: update.Timestamp,
	})
}

// LevelFromOccupancy classifies attendance against capacity
func LevelFromOccupancy(attendance, capacity int) models.CrowdLevel {
	if capacity <= 0 {
		return models.CrowdLow
	}
	ratio := float64(attendance) / float64(capacity)
	switch {
	case ratio >= 0.85:
		return models.CrowdVeryHigh
	case ratio >= 0.6:
		return models.CrowdHigh
	case ratio >= 0.3:
		return models.CrowdMedium
	default:
		return models.CrowdLow
	}
}

// ApplyInteraction counts a peer's checkin, share, rating or comment. The
// echo of a local pending interaction is already counted and is skipped.
func (uc *EventsUC) ApplyInteraction(kind models.EventUpdateType, in models.EventInteraction) {
	if in.EventID == "" {
		return
	}
	if kind == models.UpdateRating && (in.Rating < 1 || in.Rating > 5) {
		logger.Warn("Dropping rating out of range",
			logger.String("event_id", in.EventID),
			logger.Int("rating", in.Rating))
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if in.ID != "" && uc.isPendingLocked(in.EventID, in.ID) {
		return
	}
	if event, ok := uc.events[in.EventID]; ok {
		applyDelta(&event, kind, in.Rating, 1)
		uc.events[in.EventID] = event
	}

	uc.recordLocked(models.EventUpdate{
		EventID:   in.EventID,
		Type:      kind,
		Priority:  models.UpdatePriorityLow,
		Message:   interactionMessage(kind, in),
		Timestamp: in.Timestamp,
	})
}

func interactionMessage(kind models.EventUpdateType, in models.EventInteraction) string {
	switch kind {
	case models.UpdateCheckin:
		return in.UserID + " checked in"
	case models.UpdateShare:
		if in.Platform != "" {
			return in.UserID + " shared on " + in.Platform
		}
		return in.UserID + " shared"
	case models.UpdateRating:
		return fmt.Sprintf("%s rated %d", in.UserID, in.Rating)
	case models.UpdateComment:
		return in.Comment
	}
	return ""
}

func (uc *EventsUC) recordLocked(update models.EventUpdate) {
	if update.ID == "" {
		update.ID = uuid.New().String()
	}
	if update.Timestamp.IsZero() {
		update.Timestamp = uc.now()
	}
	update.Event = nil

	feed := append(uc.updates[update.EventID], update)
	if len(feed) > maxUpdatesPerEvent {
		feed = feed[len(feed)-maxUpdatesPerEvent:]
	}
	uc.updates[update.EventID] = feed
}

// emit swallows a dropped emit; the manager has already logged it
func (uc *EventsUC) emit(err error) error {
	if err == nil || errors.Is(err, models.ErrTransportUnavailable) {
		return nil
	}
	return fmt.Errorf("failed to emit event subscription: %w", err)
}

func copyEvent(event models.LiveEvent) models.LiveEvent {
	event.Tags = append([]string(nil), event.Tags...)
	if event.Pricing != nil {
		pricing := *event.Pricing
		event.Pricing = &pricing
	}
	return event
}

func sortByStart(list []models.LiveEvent) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].StartTime.Equal(list[j].StartTime) {
			return list[i].ID < list[j].ID
		}
		return list[i].StartTime.Before(list[j].StartTime)
	})
}

func sortNewestFirst(list []models.EventUpdate) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].ID > list[j].ID
		}
		return list[i].Timestamp.After(list[j].Timestamp)
	})
}
