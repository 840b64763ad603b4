package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/crowd/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewsResponse struct {
	Success bool        `json:"success"`
	Data    []CrowdView `json:"data"`
}

func newContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, target, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestNewCrowdHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCrowdUC(ctrl)
	handler := NewCrowdHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.crowdUC)
}

func TestCrowdHandler_ListCrowd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCrowdUC(ctrl)
	records := []models.CrowdRecord{
		{LocationID: "a", Level: models.CrowdHigh, Trend: models.TrendIncreasing},
		{LocationID: "b", Level: models.CrowdLow, Trend: models.TrendStable},
	}
	mockUC.EXPECT().GetAllCrowdData().Return(records)
	mockUC.EXPECT().IsStale(records[0]).Return(false)
	mockUC.EXPECT().IsStale(records[1]).Return(true)

	c, rec := newContext(http.MethodGet, "/crowd", nil)
	require.NoError(t, NewCrowdHandler(mockUC).ListCrowd(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp viewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "a", resp.Data[0].LocationID)
	assert.Equal(t, "#f97316", resp.Data[0].Color)
	assert.False(t, resp.Data[0].Stale)
	assert.True(t, resp.Data[1].Stale)
	assert.NotEmpty(t, resp.Data[1].Label)
}

func TestCrowdHandler_GetCrowd(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockCrowdUC)
		expectedStatus int
	}{
		{
			name: "Success",
			mockSetup: func(mockUC *mocks.MockCrowdUC) {
				record := models.CrowdRecord{LocationID: "cafe-1", Level: models.CrowdMedium}
				mockUC.EXPECT().GetCrowdData("cafe-1").Return(record, true)
				mockUC.EXPECT().IsStale(record).Return(false)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not found",
			mockSetup: func(mockUC *mocks.MockCrowdUC) {
				mockUC.EXPECT().GetCrowdData("cafe-1").Return(models.CrowdRecord{}, false)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCrowdUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newContext(http.MethodGet, "/crowd/cafe-1", nil)
			c.SetParamNames("id")
			c.SetParamValues("cafe-1")

			require.NoError(t, NewCrowdHandler(mockUC).GetCrowd(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCrowdHandler_ListByLevel(t *testing.T) {
	tests := []struct {
		name           string
		level          string
		mockSetup      func(*mocks.MockCrowdUC)
		expectedStatus int
	}{
		{
			name:  "Success",
			level: "very_high",
			mockSetup: func(mockUC *mocks.MockCrowdUC) {
				mockUC.EXPECT().GetLocationsByLevel(models.CrowdVeryHigh).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown level",
			level:          "packed",
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCrowdUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newContext(http.MethodGet, "/crowd/level/"+tt.level, nil)
			c.SetParamNames("level")
			c.SetParamValues(tt.level)

			require.NoError(t, NewCrowdHandler(mockUC).ListByLevel(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCrowdHandler_ListNearby(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockCrowdUC)
		expectedStatus int
	}{
		{
			name:  "Default radius",
			query: "?lat=-6.175&lng=106.827",
			mockSetup: func(mockUC *mocks.MockCrowdUC) {
				mockUC.EXPECT().
					GetNearbyCrowd(models.Coordinates{Latitude: -6.175, Longitude: 106.827}, 1.0).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Custom radius",
			query: "?lat=-6.175&lng=106.827&radius=2.5",
			mockSetup: func(mockUC *mocks.MockCrowdUC) {
				mockUC.EXPECT().GetNearbyCrowd(gomock.Any(), 2.5).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing coordinates",
			query:          "?lat=-6.175",
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Out of range",
			query:          "?lat=-96&lng=106.827",
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative radius",
			query:          "?lat=-6.175&lng=106.827&radius=-1",
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCrowdUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newContext(http.MethodGet, "/crowd/nearby"+tt.query, nil)
			require.NoError(t, NewCrowdHandler(mockUC).ListNearby(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCrowdHandler_Subscribe(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockCrowdUC)
		expectedStatus int
	}{
		{
			name:        "Success",
			requestBody: map[string]interface{}{"location_ids": []string{"a", "b"}},
			mockSetup: func(mockUC *mocks.MockCrowdUC) {
				mockUC.EXPECT().Subscribe(gomock.Any(), []string{"a", "b"}).Return(nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "Empty ids",
			requestBody:    map[string]interface{}{"location_ids": []string{}},
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid request body",
			requestBody:    "invalid json",
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Usecase error",
			requestBody: map[string]interface{}{"location_ids": []string{"a"}},
			mockSetup: func(mockUC *mocks.MockCrowdUC) {
				mockUC.EXPECT().Subscribe(gomock.Any(), []string{"a"}).Return(errors.New("publish failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCrowdUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newContext(http.MethodPost, "/crowd/subscriptions", tt.requestBody)
			require.NoError(t, NewCrowdHandler(mockUC).Subscribe(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCrowdHandler_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCrowdUC(ctrl)
	mockUC.EXPECT().Unsubscribe(gomock.Any(), []string{"a"}).Return(nil)

	c, rec := newContext(http.MethodDelete, "/crowd/subscriptions", map[string]interface{}{"location_ids": []string{"a"}})
	require.NoError(t, NewCrowdHandler(mockUC).Unsubscribe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCrowdHandler_RegisterLocations(t *testing.T) {
	open := models.LocationCandidate{
		ID:          "cafe-1",
		Category:    "cafe",
		IsOpen:      true,
		Coordinates: models.Coordinates{Latitude: -6.2, Longitude: 106.8},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockCrowdUC)
		expectedStatus int
	}{
		{
			name:        "Success",
			requestBody: []models.LocationCandidate{open},
			mockSetup: func(mockUC *mocks.MockCrowdUC) {
				record := models.CrowdRecord{LocationID: "cafe-1", Level: models.CrowdHigh, IsEstimate: true}
				gomock.InOrder(
					mockUC.EXPECT().RegisterCandidates([]models.LocationCandidate{open}),
					mockUC.EXPECT().AnalyzeOpenLocations(gomock.Any(), []models.LocationCandidate{open}).
						Return([]models.CrowdRecord{record}),
				)
				mockUC.EXPECT().IsStale(record).Return(false)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing id",
			requestBody:    []models.LocationCandidate{{Category: "cafe"}},
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid coordinates",
			requestBody: []models.LocationCandidate{{
				ID:          "x",
				Coordinates: models.Coordinates{Latitude: 120},
			}},
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty list",
			requestBody:    []models.LocationCandidate{},
			mockSetup:      func(mockUC *mocks.MockCrowdUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCrowdUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newContext(http.MethodPost, "/crowd/locations", tt.requestBody)
			require.NoError(t, NewCrowdHandler(mockUC).RegisterLocations(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
