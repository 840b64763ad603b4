package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/services/crowd"
	httpHandler "github.com/piresc/crowdpulse/services/crowd/handler/http"
)

// HTTPHandler exposes the crowd engine over HTTP
type HTTPHandler struct {
	crowdHTTP *httpHandler.CrowdHandler
}

// NewHTTPHandler creates a new crowd HTTP handler set
func NewHTTPHandler(crowdUC crowd.CrowdUC) *HTTPHandler {
	return &HTTPHandler{crowdHTTP: httpHandler.NewCrowdHandler(crowdUC)}
}

// RegisterRoutes registers the crowd routes on g
func (h *HTTPHandler) RegisterRoutes(g *echo.Group) {
	r := g.Group("/crowd")
	r.GET("", h.crowdHTTP.ListCrowd)
	r.GET("/nearby", h.crowdHTTP.ListNearby)
	r.GET("/level/:level", h.crowdHTTP.ListByLevel)
	r.GET("/:id", h.crowdHTTP.GetCrowd)
	r.POST("/subscriptions", h.crowdHTTP.Subscribe)
	r.DELETE("/subscriptions", h.crowdHTTP.Unsubscribe)
	r.POST("/locations", h.crowdHTTP.RegisterLocations)
}
