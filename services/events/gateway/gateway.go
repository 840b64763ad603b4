package gateway

import (
	"fmt"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// EventsGW implements events.EventsGW over the push channel
type EventsGW struct {
	emitter connection.Emitter
}

// NewEventsGW creates the events gateway
func NewEventsGW(emitter connection.Emitter) *EventsGW {
	return &EventsGW{emitter: emitter}
}

// SubscribeEvents emits subscribe-events
func (g *EventsGW) SubscribeEvents(sub models.EventSubscription) error {
	return g.emitter.Emit(constants.EventSubscribeEvents, sub)
}

// UnsubscribeEvents emits unsubscribe-events
func (g *EventsGW) UnsubscribeEvents(sub models.EventSubscription) error {
	return g.emitter.Emit(constants.EventUnsubscribeEvents, sub)
}

// SendInteraction emits the event matching the interaction kind
func (g *EventsGW) SendInteraction(kind models.EventUpdateType, in models.EventInteraction) error {
	event, ok := InteractionEvent(kind)
	if !ok {
		return fmt.Errorf("unsupported interaction %q", kind)
	}
	return g.emitter.Emit(event, in)
}

// InteractionEvent maps an interaction kind onto its pub/sub event name
func InteractionEvent(kind models.EventUpdateType) (string, bool) {
	switch kind {
	case models.UpdateCheckin:
		return constants.EventEventCheckin, true
	case models.UpdateShare:
		return constants.EventEventShare, true
	case models.UpdateRating:
		return constants.EventEventRate, true
	case models.UpdateComment:
		return constants.EventEventComment, true
	}
	return "", false
}
