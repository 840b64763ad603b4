package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
	"github.com/piresc/crowdpulse/services/events"
)

// EventsHandler handles HTTP requests for tracked events
type EventsHandler struct {
	eventsUC events.EventsUC
}

// NewEventsHandler creates a new events HTTP handler
func NewEventsHandler(eventsUC events.EventsUC) *EventsHandler {
	return &EventsHandler{eventsUC: eventsUC}
}

type eventIDsRequest struct {
	EventIDs []string `json:"event_ids"`
}

type shareRequest struct {
	Platform string `json:"platform"`
}

type rateRequest struct {
	Rating int `json:"rating"`
}

type commentRequest struct {
	Comment string `json:"comment"`
}

// ListEvents returns the cached events narrowed by the query filters
func (h *EventsHandler) ListEvents(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.FilterEvents(filters))
}

// UpsertEvents stores or replaces events in the cache
func (h *EventsHandler) UpsertEvents(c echo.Context) error {
	var list []models.LiveEvent
	if err := c.Bind(&list); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	stored := h.eventsUC.UpsertEvents(list)
	logger.Info("Events upserted", logger.Int("count", stored))
	return utils.SuccessResponse(c, http.StatusOK, "Events stored", map[string]int{"stored": stored})
}

// GetEvent returns one cached event
func (h *EventsHandler) GetEvent(c echo.Context) error {
	event, ok := h.eventsUC.GetEvent(c.Param("eventId"))
	if !ok {
		return utils.ErrorFromDomain(c, models.ErrEventNotFound)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", event)
}

// Upcoming returns upcoming events, soonest first
func (h *EventsHandler) Upcoming(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.GetUpcomingEvents(limit))
}

// Live returns live events, highest attendance first
func (h *EventsHandler) Live(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.GetLiveEvents())
}

// Popular returns the most checked-in and shared events
func (h *EventsHandler) Popular(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.GetPopularEvents(limit))
}

// Search matches the q parameter against the cached events
func (h *EventsHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return utils.BadRequestResponse(c, "q is required")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.SearchEvents(query))
}

// Subscribe tracks events and asks for their pushes
func (h *EventsHandler) Subscribe(c echo.Context) error {
	var req eventIDsRequest
	if err := c.Bind(&req); err != nil || len(req.EventIDs) == 0 {
		return utils.BadRequestResponse(c, "event_ids is required")
	}
	if err := h.eventsUC.SubscribeToEvents(req.EventIDs); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Subscribed", h.eventsUC.TrackedEvents())
}

// Unsubscribe stops tracking events
func (h *EventsHandler) Unsubscribe(c echo.Context) error {
	var req eventIDsRequest
	if err := c.Bind(&req); err != nil || len(req.EventIDs) == 0 {
		return utils.BadRequestResponse(c, "event_ids is required")
	}
	if err := h.eventsUC.UnsubscribeFromEvents(req.EventIDs); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Unsubscribed", h.eventsUC.TrackedEvents())
}

// Tracked returns the tracked event ids
func (h *EventsHandler) Tracked(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.TrackedEvents())
}

// MyUpdates returns the update feed of the tracked events
func (h *EventsHandler) MyUpdates(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.GetMyUpdates())
}

// EventUpdates returns the update feed of one event
func (h *EventsHandler) EventUpdates(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.GetEventUpdates(c.Param("eventId")))
}

// PendingOps returns the unconfirmed interactions of one event
func (h *EventsHandler) PendingOps(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.eventsUC.GetPendingOps(c.Param("eventId")))
}

// Share counts a share of the event
func (h *EventsHandler) Share(c echo.Context) error {
	var req shareRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	op, err := h.eventsUC.ShareEvent(c.Param("eventId"), req.Platform)
	return h.opResponse(c, op, err)
}

// CheckIn counts a checkin at the event
func (h *EventsHandler) CheckIn(c echo.Context) error {
	op, err := h.eventsUC.CheckIn(c.Param("eventId"))
	return h.opResponse(c, op, err)
}

// Rate folds a rating into the event average
func (h *EventsHandler) Rate(c echo.Context) error {
	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	op, err := h.eventsUC.RateEvent(c.Param("eventId"), req.Rating)
	return h.opResponse(c, op, err)
}

// Comment adds a comment to the event
func (h *EventsHandler) Comment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	op, err := h.eventsUC.AddComment(c.Param("eventId"), req.Comment)
	return h.opResponse(c, op, err)
}

func (h *EventsHandler) opResponse(c echo.Context, op models.PendingOp, err error) error {
	if err != nil {
		if op.Status == models.OpRolledBack {
			logger.Warn("Event interaction rolled back",
				logger.String("event_id", op.EventID),
				logger.String("op_id", op.ID))
		}
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Interaction pending", op)
}

func parseLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	return limit, nil
}

func parseFilters(c echo.Context) (models.EventFilters, error) {
	filters := models.EventFilters{
		Categories: listParam(c, "category"),
	}
	for _, s := range listParam(c, "status") {
		filters.Statuses = append(filters.Statuses, models.EventStatus(s))
	}
	for _, l := range listParam(c, "crowd_level") {
		level := models.CrowdLevel(l)
		if !level.Valid() {
			return filters, errors.New("unknown crowd level " + l)
		}
		filters.CrowdLevels = append(filters.CrowdLevels, level)
	}

	var err error
	if raw := c.QueryParam("from"); raw != "" {
		if filters.From, err = models.ParseTime(raw); err != nil {
			return filters, errors.New("from must be RFC3339")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if filters.To, err = models.ParseTime(raw); err != nil {
			return filters, errors.New("to must be RFC3339")
		}
	}

	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" {
		lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
		origin := models.Coordinates{Latitude: lat, Longitude: lng}
		if errLat != nil || errLng != nil || !origin.Valid() {
			return filters, errors.New("lat and lng must be valid coordinates")
		}
		filters.Origin = &origin
		if filters.RadiusKm, err = floatParam(c, "radius"); err != nil {
			return filters, err
		}
	}

	if filters.MinPrice, err = optionalFloat(c, "min_price"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = optionalFloat(c, "max_price"); err != nil {
		return filters, err
	}
	return filters, nil
}

// listParam accepts both repeated and comma-separated values
func listParam(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func floatParam(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, errors.New(name + " must be a non-negative number")
	}
	return v, nil
}

func optionalFloat(c echo.Context, name string) (*float64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}
	v, err := floatParam(c, name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
