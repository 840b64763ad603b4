package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
	"github.com/piresc/crowdpulse/services/crowd"
	"github.com/piresc/crowdpulse/services/crowd/usecase"
)

const defaultNearbyRadiusKm = 1.0

// CrowdView is a CrowdRecord decorated for display
type CrowdView struct {
	models.CrowdRecord
	Color     string `json:"color"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	TrendIcon string `json:"trend_icon"`
	Stale     bool   `json:"stale"`
}

// CrowdHandler handles HTTP requests for crowd data
type CrowdHandler struct {
	crowdUC crowd.CrowdUC
}

// NewCrowdHandler creates a new crowd HTTP handler
func NewCrowdHandler(crowdUC crowd.CrowdUC) *CrowdHandler {
	return &CrowdHandler{crowdUC: crowdUC}
}

type locationIDsRequest struct {
	LocationIDs []string `json:"location_ids"`
}

// ListCrowd returns every cached record
func (h *CrowdHandler) ListCrowd(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.views(h.crowdUC.GetAllCrowdData()))
}

// GetCrowd returns the record of one location
func (h *CrowdHandler) GetCrowd(c echo.Context) error {
	record, ok := h.crowdUC.GetCrowdData(c.Param("id"))
	if !ok {
		return utils.NotFoundResponse(c, "no crowd data for location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.view(record))
}

// ListByLevel returns the records at one crowd level
func (h *CrowdHandler) ListByLevel(c echo.Context) error {
	level := models.CrowdLevel(c.Param("level"))
	if !level.Valid() {
		return utils.BadRequestResponse(c, "unknown crowd level")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.views(h.crowdUC.GetLocationsByLevel(level)))
}

// ListNearby returns records within radius (km) of lat/lng, nearest first
func (h *CrowdHandler) ListNearby(c echo.Context) error {
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

	return utils.SuccessResponse(c, http.StatusOK, "", h.views(h.crowdUC.GetNearbyCrowd(origin, radius)))
}

// Subscribe registers the given locations for push updates
func (h *CrowdHandler) Subscribe(c echo.Context) error {
	var req locationIDsRequest
	if err := c.Bind(&req); err != nil || len(req.LocationIDs) == 0 {
		return utils.BadRequestResponse(c, "location_ids is required")
	}

	if err := h.crowdUC.Subscribe(c.Request().Context(), req.LocationIDs); err != nil {
		logger.Error("Failed to subscribe to crowd data", logger.Strings("location_ids", req.LocationIDs), logger.Err(err))
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Subscribed", req)
}

// Unsubscribe stops push updates for the given locations
func (h *CrowdHandler) Unsubscribe(c echo.Context) error {
	var req locationIDsRequest
	if err := c.Bind(&req); err != nil || len(req.LocationIDs) == 0 {
		return utils.BadRequestResponse(c, "location_ids is required")
	}

	if err := h.crowdUC.Unsubscribe(c.Request().Context(), req.LocationIDs); err != nil {
		logger.Error("Failed to unsubscribe from crowd data", logger.Strings("location_ids", req.LocationIDs), logger.Err(err))
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Unsubscribed", req)
}

// RegisterLocations adds candidates to the continuous analysis and
// classifies the open ones right away
func (h *CrowdHandler) RegisterLocations(c echo.Context) error {
	var candidates []models.LocationCandidate
	if err := c.Bind(&candidates); err != nil || len(candidates) == 0 {
		return utils.BadRequestResponse(c, "a list of locations is required")
	}
	for _, candidate := range candidates {
		if candidate.ID == "" {
			return utils.BadRequestResponse(c, "every location needs an id")
		}
		if !candidate.Coordinates.Valid() {
			return utils.ErrorFromDomain(c, models.ErrInvalidLocation)
		}
	}

	h.crowdUC.RegisterCandidates(candidates)
	records := h.crowdUC.AnalyzeOpenLocations(c.Request().Context(), candidates)
	return utils.SuccessResponse(c, http.StatusOK, "Locations registered", h.views(records))
}

func (h *CrowdHandler) view(record models.CrowdRecord) CrowdView {
	return CrowdView{
		CrowdRecord: record,
		Color:       usecase.LevelColor(record.Level),
		Label:       usecase.LevelText(record.Level),
		Icon:        usecase.LevelIcon(record.Level),
		TrendIcon:   usecase.TrendIcon(record.Trend),
		Stale:       h.crowdUC.IsStale(record),
	}
}

func (h *CrowdHandler) views(records []models.CrowdRecord) []CrowdView {
	out := make([]CrowdView, len(records))
	for i, record := range records {
		out[i] = h.view(record)
	}
	return out
}
