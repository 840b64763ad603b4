package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/sharing"
)

// PollerRequestCleanup expires stale location requests
const PollerRequestCleanup = "sharing-request-cleanup"

const defaultCleanupInterval = 60 * time.Second

// SharingBusHandler feeds inbound sharing events into the sharing store and
// runs the request cleanup poller
type SharingBusHandler struct {
	sharingUC sharing.SharingUC
	bus       connection.Subscriber
	scheduler connection.Scheduler
	interval  time.Duration
	subs      []*connection.Subscription
}

// NewSharingBusHandler creates a new sharing bus handler
func NewSharingBusHandler(sharingUC sharing.SharingUC, bus connection.Subscriber, scheduler connection.Scheduler, cfg models.SharingConfig) *SharingBusHandler {
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &SharingBusHandler{
		sharingUC: sharingUC,
		bus:       bus,
		scheduler: scheduler,
		interval:  interval,
	}
}

// Init subscribes to the sharing events and registers the cleanup poller
func (h *SharingBusHandler) Init() error {
	h.subs = append(h.subs,
		h.bus.Subscribe(constants.EventLocationShared, h.handleLocationShared),
		h.bus.Subscribe(constants.EventLocationSharingStopped, h.handleSharingStopped),
		h.bus.Subscribe(constants.EventLocationRequestReceived, h.handleRequestReceived),
		h.bus.Subscribe(constants.EventLocationRequestResponse, h.handleRequestResponse),
	)

	if err := h.scheduler.Every(PollerRequestCleanup, h.interval, h.sharingUC.CleanupExpiredRequests); err != nil {
		h.Dispose()
		return fmt.Errorf("failed to register %s poller: %w", PollerRequestCleanup, err)
	}

	logger.Info("Sharing bus handler initialized", logger.Duration("cleanup_interval", h.interval))
	return nil
}

// Dispose cancels subscriptions and the poller and stops any active sharing
func (h *SharingBusHandler) Dispose() {
	for _, sub := range h.subs {
		sub.Cancel()
	}
	h.subs = nil
	h.scheduler.CancelPoller(PollerRequestCleanup)

	if err := h.sharingUC.StopLocationSharing(); err != nil {
		logger.Warn("Failed to stop location sharing", logger.Err(err))
	}
}

func (h *SharingBusHandler) handleLocationShared(payload []byte) error {
	var loc models.SharedLocation
	if err := json.Unmarshal(payload, &loc); err != nil {
		return fmt.Errorf("failed to unmarshal shared location: %w", err)
	}
	h.sharingUC.ApplyPeerLocation(loc)
	return nil
}

func (h *SharingBusHandler) handleSharingStopped(payload []byte) error {
	var stopped models.SharingStopped
	if err := json.Unmarshal(payload, &stopped); err != nil {
		return fmt.Errorf("failed to unmarshal sharing stopped: %w", err)
	}
	h.sharingUC.ApplySharingStopped(stopped)
	return nil
}

func (h *SharingBusHandler) handleRequestReceived(payload []byte) error {
	var req models.LocationShareRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal location request: %w", err)
	}
	h.sharingUC.ReceiveLocationRequest(req)
	return nil
}

func (h *SharingBusHandler) handleRequestResponse(payload []byte) error {
	var resp models.LocationRequestResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal location request response: %w", err)
	}
	h.sharingUC.ApplyRequestResponse(resp)
	return nil
}
