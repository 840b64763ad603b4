package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/services/notification"
	httpHandler "github.com/piresc/crowdpulse/services/notification/handler/http"
)

// HTTPHandler exposes the notification store over HTTP
type HTTPHandler struct {
	notificationHTTP *httpHandler.NotificationHandler
}

// NewHTTPHandler creates a new notification HTTP handler set
func NewHTTPHandler(notificationUC notification.NotificationUC) *HTTPHandler {
	return &HTTPHandler{notificationHTTP: httpHandler.NewNotificationHandler(notificationUC)}
}

// RegisterRoutes registers the notification routes on g
func (h *HTTPHandler) RegisterRoutes(g *echo.Group) {
	r := g.Group("/notifications")
	r.GET("", h.notificationHTTP.List)
	r.POST("", h.notificationHTTP.Create)
	r.DELETE("", h.notificationHTTP.Clear)
	r.POST("/read", h.notificationHTTP.MarkAllRead)
	r.GET("/settings", h.notificationHTTP.GetSettings)
	r.PUT("/settings", h.notificationHTTP.UpdateSettings)
	r.GET("/permission", h.notificationHTTP.Permission)
	r.POST("/permission", h.notificationHTTP.RequestPermission)
	r.POST("/push", h.notificationHTTP.Subscribe)
	r.DELETE("/push", h.notificationHTTP.Unsubscribe)
	r.GET("/business", h.notificationHTTP.ListBusiness)
	r.POST("/business", h.notificationHTTP.CreateBusiness)
	r.GET("/business/nearby", h.notificationHTTP.NearbyBusiness)
	r.POST("/:notificationId/read", h.notificationHTTP.MarkRead)
	r.DELETE("/:notificationId", h.notificationHTTP.Remove)
}
