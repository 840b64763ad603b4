package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestNotificationHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	mockUC.EXPECT().GetNotifications().Return([]models.PushNotification{{ID: "n1"}, {ID: "n2", IsRead: true}})
	mockUC.EXPECT().UnreadCount().Return(1)

	c, rec := newContext(http.MethodGet, "/notifications", nil)
	require.NoError(t, NewNotificationHandler(mockUC).List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data listResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.Notifications, 2)
	assert.Equal(t, 1, body.Data.Unread)
}

func TestNotificationHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockNotificationUC)
		expectedStatus int
	}{
		{
			name: "Queued",
			body: models.PushNotification{Type: models.NotificationSystem, Title: "Hello"},
			mockSetup: func(mockUC *mocks.MockNotificationUC) {
				mockUC.EXPECT().AddNotification(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n models.PushNotification) (models.PushNotification, bool) {
					n.ID = "n1"
					return n, true
				})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Suppressed",
			body: models.PushNotification{Type: models.NotificationSystem, Title: "Hello"},
			mockSetup: func(mockUC *mocks.MockNotificationUC) {
				mockUC.EXPECT().AddNotification(gomock.Any(), gomock.Any()).Return(models.PushNotification{ID: "n1"}, false)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "Missing title",
			body:           models.PushNotification{Type: models.NotificationSystem},
			mockSetup:      func(mockUC *mocks.MockNotificationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockNotificationUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newContext(http.MethodPost, "/notifications", tt.body)
			require.NoError(t, NewNotificationHandler(mockUC).Create(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestNotificationHandler_MarkReadAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	mockUC.EXPECT().MarkAsRead("n1").Return(nil)
	mockUC.EXPECT().MarkAsRead("zzz").Return(models.ErrNotificationNotFound)
	mockUC.EXPECT().RemoveNotification("n1").Return(nil)
	h := NewNotificationHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/notifications/n1/read", nil)
	c.SetParamNames("notificationId")
	c.SetParamValues("n1")
	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/notifications/zzz/read", nil)
	c.SetParamNames("notificationId")
	c.SetParamValues("zzz")
	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newContext(http.MethodDelete, "/notifications/n1", nil)
	c.SetParamNames("notificationId")
	c.SetParamValues("n1")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNotificationHandler_UpdateSettings(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockNotificationUC)
		expectedStatus int
	}{
		{
			name: "Success",
			mockSetup: func(mockUC *mocks.MockNotificationUC) {
				mockUC.EXPECT().UpdateSettings(gomock.Any()).Return(nil)
				mockUC.EXPECT().GetSettings().Return(models.DefaultNotificationSettings())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Invalid quiet hours",
			mockSetup: func(mockUC *mocks.MockNotificationUC) {
				mockUC.EXPECT().UpdateSettings(gomock.Any()).Return(models.ErrInvalidQuietHours)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockNotificationUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newContext(http.MethodPut, "/notifications/settings", models.DefaultNotificationSettings())
			require.NoError(t, NewNotificationHandler(mockUC).UpdateSettings(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestNotificationHandler_Subscribe(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "Subscribed", expectedStatus: http.StatusCreated},
		{name: "Permission denied", err: models.ErrPermissionDenied, expectedStatus: http.StatusForbidden},
		{name: "Empty endpoint", err: models.ErrInvalidSubscription, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockNotificationUC(ctrl)
			mockUC.EXPECT().SubscribeToPush(gomock.Any(), models.PushSubscription{Endpoint: "https://push.example/a"}).Return(tt.err)

			c, rec := newContext(http.MethodPost, "/notifications/push", map[string]string{"endpoint": "https://push.example/a"})
			require.NoError(t, NewNotificationHandler(mockUC).Subscribe(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestNotificationHandler_RequestPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	mockUC.EXPECT().RequestPermission(gomock.Any()).Return(models.PermissionDenied, models.ErrPermissionDenied)

	c, rec := newContext(http.MethodPost, "/notifications/permission", nil)
	require.NoError(t, NewNotificationHandler(mockUC).RequestPermission(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNotificationHandler_CreateBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	mockUC.EXPECT().AddBusinessNotification(gomock.Any(), gomock.Any()).Return(models.BusinessNotification{}, models.ErrInvalidLocation)
	h := NewNotificationHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/notifications/business", map[string]interface{}{"title": "x"})
	require.NoError(t, h.CreateBusiness(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "business_id required")

	c, rec = newContext(http.MethodPost, "/notifications/business", map[string]interface{}{
		"business_id": "cafe",
		"geofence":    map[string]interface{}{"center": map[string]float64{"latitude": 123}, "radius_km": 1},
	})
	require.NoError(t, h.CreateBusiness(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler_NearbyBusiness(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockNotificationUC)
		expectedStatus int
	}{
		{
			name:  "Default radius",
			query: "?lat=-6.1754&lng=106.8272",
			mockSetup: func(mockUC *mocks.MockNotificationUC) {
				mockUC.EXPECT().GetNearbyBusinessNotifications(models.Coordinates{Latitude: -6.1754, Longitude: 106.8272}, 0.0).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Explicit radius",
			query: "?lat=-6.1754&lng=106.8272&radius=2",
			mockSetup: func(mockUC *mocks.MockNotificationUC) {
				mockUC.EXPECT().GetNearbyBusinessNotifications(gomock.Any(), 2.0).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing coordinates",
			query:          "?lat=-6.1754",
			mockSetup:      func(mockUC *mocks.MockNotificationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad radius",
			query:          "?lat=-6.1754&lng=106.8272&radius=-1",
			mockSetup:      func(mockUC *mocks.MockNotificationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockNotificationUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newContext(http.MethodGet, "/notifications/business/nearby"+tt.query, nil)
			require.NoError(t, NewNotificationHandler(mockUC).NearbyBusiness(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
