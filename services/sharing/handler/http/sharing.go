package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
	"github.com/piresc/crowdpulse/services/sharing"
)

const defaultNearbyRadiusKm = 1.0

// PositionSink receives device fixes pushed by the client
type PositionSink interface {
	Push(pos models.Position) error
}

// SharingHandler handles HTTP requests for live location sharing
type SharingHandler struct {
	sharingUC sharing.SharingUC
	positions PositionSink
}

// NewSharingHandler creates a new sharing HTTP handler. positions may be nil
// when fixes come from elsewhere.
func NewSharingHandler(sharingUC sharing.SharingUC, positions PositionSink) *SharingHandler {
	return &SharingHandler{
		sharingUC: sharingUC,
		positions: positions,
	}
}

type statusResponse struct {
	Sharing  bool                   `json:"sharing"`
	Location *models.SharedLocation `json:"location,omitempty"`
}

type locationRequestBody struct {
	ToUserID string `json:"to_user_id"`
	Message  string `json:"message"`
}

// Start begins broadcasting the local user's location
func (h *SharingHandler) Start(c echo.Context) error {
	if err := h.sharingUC.StartLocationSharing(c.Request().Context()); err != nil {
		logger.Warn("Failed to start location sharing", logger.Err(err))
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location sharing started", h.status())
}

// Stop ends the broadcast
func (h *SharingHandler) Stop(c echo.Context) error {
	if err := h.sharingUC.StopLocationSharing(); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location sharing stopped", h.status())
}

// Status reports whether sharing is on and the last broadcast
func (h *SharingHandler) Status(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.status())
}

// PushPosition feeds a device fix into the geolocation watch
func (h *SharingHandler) PushPosition(c echo.Context) error {
	if h.positions == nil {
		return utils.ServiceUnavailableResponse(c, "position feed not configured")
	}

	var pos models.Position
	if err := c.Bind(&pos); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := h.positions.Push(pos); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

// ListPeers returns the cached peer locations
func (h *SharingHandler) ListPeers(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.sharingUC.GetPeerLocations())
}

// PeerDistance returns the distance in km to a cached peer
func (h *SharingHandler) PeerDistance(c echo.Context) error {
	userID := c.Param("userId")
	distance, ok := h.sharingUC.GetDistanceToUser(userID)
	if !ok {
		return utils.NotFoundResponse(c, "peer location or own location unknown")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"user_id":     userID,
		"distance_km": distance,
	})
}

// ListNearby returns peers within radius (km) of lat/lng, nearest first
func (h *SharingHandler) ListNearby(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}
	origin := models.Coordinates{Latitude: lat, Longitude: lng}
	if !origin.Valid() {
		return utils.ErrorFromDomain(c, models.ErrInvalidLocation)
	}

	radius := defaultNearbyRadiusKm
	if raw := c.QueryParam("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r <= 0 {
			return utils.BadRequestResponse(c, "radius must be a positive number")
		}
		radius = r
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.sharingUC.GetNearbyUsers(origin, radius))
}

// SendRequest asks a peer to share their location
func (h *SharingHandler) SendRequest(c echo.Context) error {
	var body locationRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	req, err := h.sharingUC.SendLocationRequest(body.ToUserID, body.Message)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Location request sent", req)
}

// ListRequests returns every known request, newest first
func (h *SharingHandler) ListRequests(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.sharingUC.GetRequests())
}

// AcceptRequest accepts an inbound request
func (h *SharingHandler) AcceptRequest(c echo.Context) error {
	if err := h.sharingUC.AcceptLocationRequest(c.Request().Context(), c.Param("requestId")); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location request accepted", nil)
}

// DeclineRequest declines an inbound request
func (h *SharingHandler) DeclineRequest(c echo.Context) error {
	if err := h.sharingUC.DeclineLocationRequest(c.Param("requestId")); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location request declined", nil)
}

// GetPrivacy returns the privacy settings
func (h *SharingHandler) GetPrivacy(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.sharingUC.GetPrivacySettings())
}

// UpdatePrivacy replaces the privacy settings
func (h *SharingHandler) UpdatePrivacy(c echo.Context) error {
	var settings models.PrivacySettings
	if err := c.Bind(&settings); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	switch settings.Scope {
	case models.ShareWithNone, models.ShareWithFriends, models.ShareWithAll:
	default:
		return utils.BadRequestResponse(c, "scope must be none, friends or all")
	}
	if settings.AutoExpireAfter < 0 {
		return utils.BadRequestResponse(c, "auto_expire_after must not be negative")
	}

	h.sharingUC.UpdatePrivacySettings(settings)
	return utils.SuccessResponse(c, http.StatusOK, "Privacy settings updated", h.sharingUC.GetPrivacySettings())
}

func (h *SharingHandler) status() statusResponse {
	resp := statusResponse{Sharing: h.sharingUC.IsSharing()}
	if loc, ok := h.sharingUC.MyLocation(); ok {
		resp.Location = &loc
	}
	return resp
}
