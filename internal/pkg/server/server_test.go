package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestShutdownManager_ReverseOrderAndOnce(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())

	var order []string
	sm.Register("transport", func(context.Context) error { order = append(order, "transport"); return nil })
	sm.Register("redis", func(context.Context) error { order = append(order, "redis"); return errors.New("already closed") })
	sm.Register("stores", func(context.Context) error { order = append(order, "stores"); return nil })

	err := sm.Shutdown(context.Background())
	assert.ErrorContains(t, err, "redis: already closed")
	assert.Equal(t, []string{"stores", "redis", "transport"}, order)

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Len(t, order, 3)
}

func TestGracefulServer_RunUntilCancelled(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	sm := NewShutdownManager(logger.NewNopLogger())
	closed := false
	sm.Register("stores", func(context.Context) error { closed = true; return nil })

	port := freePort(t)
	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ShutdownTimeout: time.Second,
	}, sm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/ping"
	assert.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, closed)
}
