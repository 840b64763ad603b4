package handler

import (
	"encoding/json"
	"fmt"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/events"
)

// EventsBusHandler feeds inbound event pushes into the event tracking store
type EventsBusHandler struct {
	eventsUC events.EventsUC
	bus      connection.Subscriber
	subs     []*connection.Subscription
}

// NewEventsBusHandler creates a new events bus handler
func NewEventsBusHandler(eventsUC events.EventsUC, bus connection.Subscriber) *EventsBusHandler {
	return &EventsBusHandler{
		eventsUC: eventsUC,
		bus:      bus,
	}
}

// Init subscribes to the event pushes
func (h *EventsBusHandler) Init() error {
	h.subs = append(h.subs,
		h.bus.Subscribe(constants.EventEventUpdate, h.handleEventUpdate),
		h.bus.Subscribe(constants.EventEventAnnouncement, h.handleAnnouncement),
		h.bus.Subscribe(constants.EventEventCapacityUpdate, h.handleCapacityUpdate),
		h.bus.Subscribe(constants.EventEventCheckin, h.interaction(models.UpdateCheckin)),
		h.bus.Subscribe(constants.EventEventComment, h.interaction(models.UpdateComment)),
		h.bus.Subscribe(constants.EventEventShare, h.interaction(models.UpdateShare)),
		h.bus.Subscribe(constants.EventEventRate, h.interaction(models.UpdateRating)),
	)
	logger.Info("Events bus handler initialized")
	return nil
}

// Dispose cancels every subscription made by Init
func (h *EventsBusHandler) Dispose() {
	for _, sub := range h.subs {
		sub.Cancel()
	}
	h.subs = nil
}

func (h *EventsBusHandler) handleEventUpdate(payload []byte) error {
	var update models.EventUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		return fmt.Errorf("failed to unmarshal event update: %w", err)
	}
	h.eventsUC.ApplyEventUpdate(update)
	return nil
}

func (h *EventsBusHandler) handleAnnouncement(payload []byte) error {
	var update models.EventUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		return fmt.Errorf("failed to unmarshal event announcement: %w", err)
	}
	h.eventsUC.ApplyAnnouncement(update)
	return nil
}

func (h *EventsBusHandler) handleCapacityUpdate(payload []byte) error {
	var update models.EventCapacityUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		return fmt.Errorf("failed to unmarshal capacity update: %w", err)
	}
	h.eventsUC.ApplyCapacityUpdate(update)
	return nil
}

func (h *EventsBusHandler) interaction(kind models.EventUpdateType) connection.Handler {
	return func(payload []byte) error {
		var in models.EventInteraction
		if err := json.Unmarshal(payload, &in); err != nil {
			return fmt.Errorf("failed to unmarshal event %s: %w", kind, err)
		}
		h.eventsUC.ApplyInteraction(kind, in)
		return nil
	}
}
