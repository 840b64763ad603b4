package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct{ state models.ConnectionState }

func (f fakeState) State() models.ConnectionState { return f.state }

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterHealthEndpoints(t *testing.T) {
	svc := NewService()
	svc.AddChecker("transport", TransportChecker(fakeState{models.ConnectionState{Status: models.StatusConnected}}))
	svc.AddChecker("redis", RedisChecker(fakePinger{}))

	e := echo.New()
	RegisterHealthEndpoints(e, "crowdpulse", "1.2.3", svc)

	t.Run("ping returns build info", func(t *testing.T) {
		rec := serve(e, "/ping")
		require.Equal(t, http.StatusOK, rec.Code)

		var info BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "crowdpulse", info.ServiceName)
		assert.Equal(t, "1.2.3", info.Version)
		assert.NotEmpty(t, info.GoVersion)
	})

	t.Run("health is always ok", func(t *testing.T) {
		rec := serve(e, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("detailed reports every dependency", func(t *testing.T) {
		rec := serve(e, "/health/detailed")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Len(t, resp.Dependencies, 2)
	})

	t.Run("ready", func(t *testing.T) {
		rec := serve(e, "/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHealth_Unhealthy(t *testing.T) {
	svc := NewService()
	svc.AddChecker("transport", TransportChecker(fakeState{models.ConnectionState{
		Status:            models.StatusReconnecting,
		ReconnectAttempts: 3,
	}}))
	svc.AddChecker("redis", RedisChecker(fakePinger{err: errors.New("connection refused")}))

	e := echo.New()
	RegisterHealthEndpoints(e, "crowdpulse", "dev", svc)

	rec := serve(e, "/health/detailed")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "unhealthy", resp.Dependencies["redis"].Status)
	assert.Contains(t, resp.Dependencies["transport"].Error, "reconnecting")

	assert.Equal(t, http.StatusServiceUnavailable, serve(e, "/ready").Code)
}
