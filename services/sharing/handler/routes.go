package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/services/sharing"
	httpHandler "github.com/piresc/crowdpulse/services/sharing/handler/http"
)

// HTTPHandler exposes the sharing store over HTTP
type HTTPHandler struct {
	sharingHTTP *httpHandler.SharingHandler
}

// NewHTTPHandler creates a new sharing HTTP handler set
func NewHTTPHandler(sharingUC sharing.SharingUC, positions httpHandler.PositionSink) *HTTPHandler {
	return &HTTPHandler{sharingHTTP: httpHandler.NewSharingHandler(sharingUC, positions)}
}

// RegisterRoutes registers the sharing routes on g
func (h *HTTPHandler) RegisterRoutes(g *echo.Group) {
	r := g.Group("/sharing")
	r.GET("", h.sharingHTTP.Status)
	r.POST("/start", h.sharingHTTP.Start)
	r.POST("/stop", h.sharingHTTP.Stop)
	r.POST("/position", h.sharingHTTP.PushPosition)
	r.GET("/peers", h.sharingHTTP.ListPeers)
	r.GET("/peers/nearby", h.sharingHTTP.ListNearby)
	r.GET("/peers/:userId/distance", h.sharingHTTP.PeerDistance)
	r.GET("/requests", h.sharingHTTP.ListRequests)
	r.POST("/requests", h.sharingHTTP.SendRequest)
	r.POST("/requests/:requestId/accept", h.sharingHTTP.AcceptRequest)
	r.POST("/requests/:requestId/decline", h.sharingHTTP.DeclineRequest)
	r.GET("/privacy", h.sharingHTTP.GetPrivacy)
	r.PUT("/privacy", h.sharingHTTP.UpdatePrivacy)
}
