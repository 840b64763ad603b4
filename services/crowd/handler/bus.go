package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/crowd"
)

// Poller names
const (
	PollerLiveAnalytics = "crowd-live-analytics"
	PollerAnalysis      = "crowd-analysis"
	PollerSnapshot      = "crowd-poll"
)

// CrowdBusHandler binds the crowd engine to the event bus and its pollers
type CrowdBusHandler struct {
	crowdUC   crowd.CrowdUC
	bus       connection.Subscriber
	scheduler connection.Scheduler
	cfg       models.CrowdConfig
	subs      []*connection.Subscription
	pollers   []string
}

// NewCrowdBusHandler creates a new crowd bus handler
func NewCrowdBusHandler(crowdUC crowd.CrowdUC, bus connection.Subscriber, scheduler connection.Scheduler, cfg models.CrowdConfig) *CrowdBusHandler {
	return &CrowdBusHandler{
		crowdUC:   crowdUC,
		bus:       bus,
		scheduler: scheduler,
		cfg:       cfg,
	}
}

// Init subscribes to crowd events and registers the crowd pollers
func (h *CrowdBusHandler) Init() error {
	h.subs = append(h.subs,
		h.bus.Subscribe(constants.EventCrowdUpdate, h.handleCrowdUpdate),
		h.bus.Subscribe(constants.EventLocationCrowdUpdate, h.handleLocationCrowdUpdate),
	)

	pollers := []struct {
		name     string
		interval time.Duration
		enabled  bool
		fn       connection.PollFunc
	}{
		{PollerLiveAnalytics, h.cfg.LivePollInterval, h.cfg.AnalyticsURL != "", h.crowdUC.RefreshAnalytics},
		{PollerAnalysis, h.cfg.AnalysisInterval, true, h.crowdUC.AnalyzeRegistered},
		{PollerSnapshot, h.cfg.PollInterval, true, h.crowdUC.PollSubscribed},
	}
	for _, p := range pollers {
		if !p.enabled {
			continue
		}
		if err := h.scheduler.Every(p.name, p.interval, p.fn); err != nil {
			h.Dispose()
			return fmt.Errorf("failed to register %s poller: %w", p.name, err)
		}
		h.pollers = append(h.pollers, p.name)
	}

	logger.Info("Crowd bus handler initialized", logger.Strings("pollers", h.pollers))
	return nil
}

// Dispose cancels every subscription and poller registered by Init
func (h *CrowdBusHandler) Dispose() {
	for _, sub := range h.subs {
		sub.Cancel()
	}
	h.subs = nil
	for _, name := range h.pollers {
		h.scheduler.CancelPoller(name)
	}
	h.pollers = nil
}

func (h *CrowdBusHandler) handleCrowdUpdate(payload []byte) error {
	var batch []models.CrowdRecord

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &batch); err != nil {
			return fmt.Errorf("failed to unmarshal crowd batch: %w", err)
		}
	} else {
		var record models.CrowdRecord
		if err := json.Unmarshal(trimmed, &record); err != nil {
			return fmt.Errorf("failed to unmarshal crowd record: %w", err)
		}
		batch = append(batch, record)
	}

	h.crowdUC.UpdateCrowdData(context.Background(), batch)
	return nil
}

func (h *CrowdBusHandler) handleLocationCrowdUpdate(payload []byte) error {
	var candidate models.LocationCandidate
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return fmt.Errorf("failed to unmarshal location crowd update: %w", err)
	}

	h.crowdUC.AnalyzeOpenLocations(context.Background(), []models.LocationCandidate{candidate})
	return nil
}
