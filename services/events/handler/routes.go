package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/services/events"
	httpHandler "github.com/piresc/crowdpulse/services/events/handler/http"
)

// HTTPHandler exposes the event tracking store over HTTP
type HTTPHandler struct {
	eventsHTTP *httpHandler.EventsHandler
}

// NewHTTPHandler creates a new events HTTP handler set
func NewHTTPHandler(eventsUC events.EventsUC) *HTTPHandler {
	return &HTTPHandler{eventsHTTP: httpHandler.NewEventsHandler(eventsUC)}
}

// RegisterRoutes registers the events routes on g
func (h *HTTPHandler) RegisterRoutes(g *echo.Group) {
	r := g.Group("/events")
	r.GET("", h.eventsHTTP.ListEvents)
	r.POST("", h.eventsHTTP.UpsertEvents)
	r.GET("/upcoming", h.eventsHTTP.Upcoming)
	r.GET("/live", h.eventsHTTP.Live)
	r.GET("/popular", h.eventsHTTP.Popular)
	r.GET("/search", h.eventsHTTP.Search)
	r.GET("/tracked", h.eventsHTTP.Tracked)
	r.GET("/updates", h.eventsHTTP.MyUpdates)
	r.POST("/subscribe", h.eventsHTTP.Subscribe)
	r.POST("/unsubscribe", h.eventsHTTP.Unsubscribe)
	r.GET("/:eventId", h.eventsHTTP.GetEvent)
	r.GET("/:eventId/updates", h.eventsHTTP.EventUpdates)
	r.GET("/:eventId/pending", h.eventsHTTP.PendingOps)
	r.POST("/:eventId/share", h.eventsHTTP.Share)
	r.POST("/:eventId/checkin", h.eventsHTTP.CheckIn)
	r.POST("/:eventId/rate", h.eventsHTTP.Rate)
	r.POST("/:eventId/comments", h.eventsHTTP.Comment)
}
