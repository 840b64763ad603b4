package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
	"github.com/piresc/crowdpulse/services/notification"
)

// NotificationHandler handles HTTP requests for the notification queue
type NotificationHandler struct {
	notificationUC notification.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notification.NotificationUC) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

type listResponse struct {
	Notifications []models.PushNotification `json:"notifications"`
	Unread        int                       `json:"unread"`
}

// List returns the queue, most recent first
func (h *NotificationHandler) List(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", listResponse{
		Notifications: h.notificationUC.GetNotifications(),
		Unread:        h.notificationUC.UnreadCount(),
	})
}

// Create queues a local notification through admission
func (h *NotificationHandler) Create(c echo.Context) error {
	var n models.PushNotification
	if err := c.Bind(&n); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if n.Title == "" {
		return utils.BadRequestResponse(c, "title is required")
	}

	stored, accepted := h.notificationUC.AddNotification(c.Request().Context(), n)
	if !accepted {
		return utils.SuccessResponse(c, http.StatusAccepted, "Notification suppressed", stored)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Notification queued", stored)
}

// MarkRead flags one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notificationUC.MarkAsRead(c.Param("notificationId")); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead flags the whole queue as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	changed := h.notificationUC.MarkAllAsRead()
	return utils.SuccessResponse(c, http.StatusOK, "Notifications marked as read", map[string]int{"updated": changed})
}

// Remove drops one notification
func (h *NotificationHandler) Remove(c echo.Context) error {
	if err := h.notificationUC.RemoveNotification(c.Param("notificationId")); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Clear empties the queue
func (h *NotificationHandler) Clear(c echo.Context) error {
	h.notificationUC.ClearAll()
	return c.NoContent(http.StatusNoContent)
}

// GetSettings returns the notification settings
func (h *NotificationHandler) GetSettings(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.notificationUC.GetSettings())
}

// UpdateSettings replaces the notification settings
func (h *NotificationHandler) UpdateSettings(c echo.Context) error {
	var settings models.NotificationSettings
	if err := c.Bind(&settings); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := h.notificationUC.UpdateSettings(settings); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification settings updated", h.notificationUC.GetSettings())
}

// Permission reports the alert permission
func (h *NotificationHandler) Permission(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]models.PermissionState{
		"permission": h.notificationUC.Permission(),
	})
}

// RequestPermission asks the alert surface for permission
func (h *NotificationHandler) RequestPermission(c echo.Context) error {
	state, err := h.notificationUC.RequestPermission(c.Request().Context())
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]models.PermissionState{"permission": state})
}

// Subscribe registers a web push subscription
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	var sub models.PushSubscription
	if err := c.Bind(&sub); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := h.notificationUC.SubscribeToPush(c.Request().Context(), sub); err != nil {
		logger.Warn("Failed to subscribe to push", logger.Err(err))
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Subscribed to push", nil)
}

// Unsubscribe drops the web push subscription
func (h *NotificationHandler) Unsubscribe(c echo.Context) error {
	if err := h.notificationUC.UnsubscribeFromPush(); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBusiness returns the stored business notifications
func (h *NotificationHandler) ListBusiness(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.notificationUC.GetBusinessNotifications())
}

// CreateBusiness stores a business notification
func (h *NotificationHandler) CreateBusiness(c echo.Context) error {
	var bn models.BusinessNotification
	if err := c.Bind(&bn); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if bn.BusinessID == "" {
		return utils.BadRequestResponse(c, "business_id is required")
	}

	stored, err := h.notificationUC.AddBusinessNotification(c.Request().Context(), bn)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Business notification stored", stored)
}

// NearbyBusiness returns active business notifications around lat/lng. A
// missing radius falls back to the default radius of the settings.
func (h *NotificationHandler) NearbyBusiness(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}
	origin := models.Coordinates{Latitude: lat, Longitude: lng}
	if !origin.Valid() {
		return utils.ErrorFromDomain(c, models.ErrInvalidLocation)
	}

	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r <= 0 {
			return utils.BadRequestResponse(c, "radius must be a positive number")
		}
		radius = r
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.notificationUC.GetNearbyBusinessNotifications(origin, radius))
}
