package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/pkg/retry"
)

// DefaultMaxReconnectAttempts is used when the config leaves it unset
const DefaultMaxReconnectAttempts = 5

// StateObserver is notified after every connection state change
type StateObserver func(state models.ConnectionState)

// Manager owns the single transport connection. It tracks the
// connect/reconnect state machine, multiplexes events over an ordered bus and
// runs the registered pollers only while connected.
type Manager struct {
	transport   Transport
	retrier     *retry.Retrier
	maxAttempts int
	now         models.Clock

	mu        sync.RWMutex
	state     models.ConnectionState
	observers []StateObserver

	bus     *bus
	pollers *pollers
}

// Option configures a Manager
type Option func(*Manager)

// WithClock overrides the clock used for lastReconnectTime
func WithClock(now models.Clock) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithRetrier overrides the initial connect retrier
func WithRetrier(r *retry.Retrier) Option {
	return func(m *Manager) {
		m.retrier = r
	}
}

// NewManager creates a disconnected Manager over the given transport
func NewManager(transport Transport, cfg models.ConnectionConfig, opts ...Option) *Manager {
	maxAttempts := cfg.MaxReconnectAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxReconnectAttempts
	}

	m := &Manager{
		transport:   transport,
		maxAttempts: maxAttempts,
		now:         models.Now,
		state:       models.ConnectionState{Status: models.StatusDisconnected},
		bus:         newBus(),
		pollers:     newPollers(),
	}
	m.retrier = retry.New(retry.Config{
		MaxRetries: maxAttempts - 1,
		BaseDelay:  cfg.BackoffBase,
		MaxDelay:   cfg.BackoffMax,
		Multiplier: 2.0,
		Jitter:     true,
	}, logger.GetGlobalLogger())

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect opens the transport with exponential backoff. It is a no-op when
// already connected or connecting.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	switch m.state.Status {
	case models.StatusConnected, models.StatusConnecting:
		m.mu.Unlock()
		return nil
	}
	m.state.Status = models.StatusConnecting
	snapshot := m.state
	m.mu.Unlock()
	m.notify(snapshot)

	err := m.retrier.Execute(ctx, func(ctx context.Context) error {
		return m.transport.Connect(ctx, m)
	})
	if err != nil {
		m.setStatus(models.StatusDisconnected)
		logger.Error("Failed to connect transport", logger.Err(err))
		return fmt.Errorf("failed to connect transport: %w", err)
	}

	m.markConnected()
	logger.Info("Transport connected")
	return nil
}

// Disconnect closes the transport on request. Pollers pause until the next
// Connect.
func (m *Manager) Disconnect() error {
	m.setStatus(models.StatusDisconnected)
	m.pollers.pause()

	if err := m.transport.Close(); err != nil {
		return fmt.Errorf("failed to close transport: %w", err)
	}
	return nil
}

// Close disconnects, stops every poller and waits for in-flight cycles
func (m *Manager) Close() error {
	err := m.Disconnect()
	m.pollers.closeAndWait()
	return err
}

// State returns a copy of the current connection state
func (m *Manager) State() models.ConnectionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsConnected reports whether emits currently reach the transport
func (m *Manager) IsConnected() bool {
	return m.State().IsConnected()
}

// OnStateChange registers an observer for state transitions
func (m *Manager) OnStateChange(fn StateObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// Emit publishes payload as JSON under event. While disconnected the payload
// is logged and dropped and ErrTransportUnavailable is returned.
func (m *Manager) Emit(event string, payload interface{}) error {
	if !m.IsConnected() {
		logger.Warn("Dropping emit while disconnected",
			logger.String("event", event),
			logger.String("status", string(m.State().Status)))
		return models.ErrTransportUnavailable
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}

	if err := m.transport.Publish(event, data); err != nil {
		logger.Warn("Failed to publish event",
			logger.String("event", event),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s: %w", event, err)
	}
	return nil
}

// Subscribe appends handler to the handlers of event
func (m *Manager) Subscribe(event string, handler Handler) *Subscription {
	return m.bus.add(event, entry{handler: handler})
}

// SubscribeAll registers a handler invoked for every inbound event
func (m *Manager) SubscribeAll(handler WildcardHandler) *Subscription {
	return m.bus.add(AllEvents, entry{wildcard: handler})
}

// Unsubscribe removes every handler registered for event
func (m *Manager) Unsubscribe(event string) {
	m.bus.removeAll(event)
}

// HandlerCount returns the number of handlers registered for event
func (m *Manager) HandlerCount(event string) int {
	return m.bus.count(event)
}

// Every registers a named poller that runs only while connected. A second
// registration under the same name replaces the first.
func (m *Manager) Every(name string, interval time.Duration, fn PollFunc) error {
	if err := m.pollers.register(name, interval, fn); err != nil {
		return err
	}
	logger.Debug("Poller registered",
		logger.String("poller", name),
		logger.Duration("interval", interval))
	return nil
}

// CancelPoller stops and removes a named poller
func (m *Manager) CancelPoller(name string) bool {
	return m.pollers.cancel(name)
}

// Pollers returns the registered poller names
func (m *Manager) Pollers() []string {
	return m.pollers.names()
}

// ActivePollers returns the number of running poller goroutines
func (m *Manager) ActivePollers() int {
	return m.pollers.activeCount()
}

// Deliver dispatches an inbound payload to the bus
func (m *Manager) Deliver(event string, payload []byte) {
	if n := m.bus.dispatch(event, payload); n == 0 {
		logger.Debug("No handler for event", logger.String("event", event))
	}
}

// TransportDisconnected moves a live connection to reconnecting
func (m *Manager) TransportDisconnected(err error) {
	m.mu.Lock()
	if m.state.Status != models.StatusConnected {
		m.mu.Unlock()
		return
	}
	m.state.Status = models.StatusReconnecting
	m.state.ReconnectAttempts = 0
	snapshot := m.state
	m.mu.Unlock()

	m.pollers.pause()
	logger.Warn("Transport disconnected, reconnecting", logger.Err(err))
	m.notify(snapshot)
}

// ReconnectAttemptFailed counts a failed attempt and gives up after the
// configured maximum
func (m *Manager) ReconnectAttemptFailed(err error) {
	m.mu.Lock()
	if m.state.Status != models.StatusReconnecting {
		m.mu.Unlock()
		return
	}
	m.state.ReconnectAttempts++
	if m.state.ReconnectAttempts >= m.maxAttempts {
		m.state.Status = models.StatusDisconnected
	}
	snapshot := m.state
	m.mu.Unlock()

	logger.Warn("Reconnect attempt failed",
		logger.Int("attempt", snapshot.ReconnectAttempts),
		logger.Int("max_attempts", m.maxAttempts),
		logger.Err(err))
	m.notify(snapshot)
}

// TransportReconnected restores the connected state and resumes pollers
func (m *Manager) TransportReconnected() {
	m.mu.RLock()
	status := m.state.Status
	m.mu.RUnlock()
	if status == models.StatusConnected {
		return
	}

	m.markConnected()
	logger.Info("Transport reconnected")
}

// TransportClosed records that the transport will not reconnect
func (m *Manager) TransportClosed() {
	m.mu.RLock()
	status := m.state.Status
	m.mu.RUnlock()
	if status == models.StatusDisconnected {
		return
	}

	m.setStatus(models.StatusDisconnected)
	m.pollers.pause()
	logger.Warn("Transport closed")
}

// ReconnectDelay returns the backoff before the given reconnect attempt
func (m *Manager) ReconnectDelay(attempt int) time.Duration {
	return m.retrier.Backoff(attempt)
}

func (m *Manager) markConnected() {
	m.mu.Lock()
	m.state.Status = models.StatusConnected
	m.state.ReconnectAttempts = 0
	m.state.LastReconnectTime = m.now()
	snapshot := m.state
	m.mu.Unlock()

	m.pollers.resume()
	m.notify(snapshot)
}

func (m *Manager) setStatus(status models.ConnectionStatus) {
	m.mu.Lock()
	if m.state.Status == status {
		m.mu.Unlock()
		return
	}
	m.state.Status = status
	snapshot := m.state
	m.mu.Unlock()

	m.notify(snapshot)
}

func (m *Manager) notify(state models.ConnectionState) {
	m.mu.RLock()
	observers := append([]StateObserver(nil), m.observers...)
	m.mu.RUnlock()

	for _, fn := range observers {
		fn(state)
	}
}
