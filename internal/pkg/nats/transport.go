package nats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
)

// BackoffFunc returns the delay before the given reconnect attempt
type BackoffFunc func(attempt int) time.Duration

// Config holds NATS transport configuration
type Config struct {
	URL                  string
	SubjectRoot          string
	Name                 string
	ConnectTimeout       time.Duration
	MaxReconnectAttempts int
	Backoff              BackoffFunc
}

// Transport carries bus events over NATS subjects "<root>.<event>".
// The nats.go reconnect loop drives the Manager state machine through the
// connection callbacks.
type Transport struct {
	config Config

	mu   sync.Mutex
	conn *nats.Conn
	sub  *nats.Subscription
}

// NewTransport creates a NATS transport
func NewTransport(config Config) *Transport {
	if config.SubjectRoot == "" {
		config.SubjectRoot = constants.DefaultSubjectRoot
	}
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 5 * time.Second
	}
	if config.Backoff == nil {
		config.Backoff = func(int) time.Duration { return time.Second }
	}
	return &Transport{config: config}
}

// Subject returns the NATS subject for an event name
func (t *Transport) Subject(event string) string {
	return t.config.SubjectRoot + "." + event
}

// Connect dials NATS and subscribes to every event under the subject root
func (t *Transport) Connect(ctx context.Context, events connection.Events) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var conn *nats.Conn
	isCurrent := func() bool {
		t.mu.Lock()
		defer t.mu.Unlock()
		return conn != nil && t.conn == conn
	}

	opts := []nats.Option{
		nats.Name(t.config.Name),
		nats.Timeout(t.config.ConnectTimeout),
		nats.NoEcho(),
		nats.MaxReconnects(t.config.MaxReconnectAttempts),
		nats.CustomReconnectDelay(func(attempts int) time.Duration {
			// invoked once per failed pass over the server list
			if isCurrent() {
				events.ReconnectAttemptFailed(fmt.Errorf("reconnect attempt %d failed", attempts))
			}
			return t.config.Backoff(attempts)
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if isCurrent() {
				events.TransportDisconnected(err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if isCurrent() {
				events.TransportReconnected()
			}
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if isCurrent() {
				events.TransportClosed()
			}
		}),
	}

	nc, err := nats.Connect(t.config.URL, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	prefix := t.config.SubjectRoot + "."
	sub, err := nc.Subscribe(prefix+constants.SubjectWildcard, func(msg *nats.Msg) {
		event := strings.TrimPrefix(msg.Subject, prefix)
		events.Deliver(event, msg.Data)
	})
	if err != nil {
		nc.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", prefix+constants.SubjectWildcard, err)
	}

	t.mu.Lock()
	old := t.conn
	conn = nc
	t.conn = nc
	t.sub = sub
	t.mu.Unlock()

	if old != nil {
		old.Close()
	}

	logger.Info("Connected to NATS",
		logger.String("url", nc.ConnectedUrl()),
		logger.String("subject_root", t.config.SubjectRoot))
	return nil
}

// Publish sends payload on the subject of event
func (t *Transport) Publish(event string, payload []byte) error {
	t.mu.Lock()
	nc := t.conn
	t.mu.Unlock()

	if nc == nil {
		return errors.New("nats transport not connected")
	}
	if err := nc.Publish(t.Subject(event), payload); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close unsubscribes and closes the connection. Callbacks of the closed
// connection are ignored from here on.
func (t *Transport) Close() error {
	t.mu.Lock()
	nc, sub := t.conn, t.sub
	t.conn, t.sub = nil, nil
	t.mu.Unlock()

	if sub != nil {
		_ = sub.Unsubscribe()
	}
	if nc != nil {
		nc.Close()
	}
	return nil
}

// Conn returns the live NATS connection, or nil
func (t *Transport) Conn() *nats.Conn {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn
}
