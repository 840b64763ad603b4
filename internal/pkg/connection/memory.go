package connection

import (
	"context"
	"errors"
	"sync"
)

// ErrTransportClosed is returned by MemoryTransport.Publish when closed
var ErrTransportClosed = errors.New("memory transport closed")

// Published is one payload recorded by MemoryTransport
type Published struct {
	Event   string
	Payload []byte
}

// MemoryTransport is an in-process Transport. It records published payloads
// and lets callers inject inbound events and lifecycle changes. Standalone
// runs and tests use it in place of NATS.
type MemoryTransport struct {
	mu         sync.Mutex
	events     Events
	connected  bool
	connectErr error
	published  []Published
	loopback   bool
}

// NewMemoryTransport creates a MemoryTransport. With loopback set, every
// published payload is also delivered back to the bus.
func NewMemoryTransport(loopback bool) *MemoryTransport {
	return &MemoryTransport{loopback: loopback}
}

// FailConnect makes subsequent Connect calls fail with err (nil clears it)
func (t *MemoryTransport) FailConnect(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connectErr = err
}

// Connect implements Transport
func (t *MemoryTransport) Connect(_ context.Context, events Events) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.connectErr != nil {
		return t.connectErr
	}
	t.events = events
	t.connected = true
	return nil
}

// Publish implements Transport
func (t *MemoryTransport) Publish(event string, payload []byte) error {
	t.mu.Lock()
	if !t.connected {
		t.mu.Unlock()
		return ErrTransportClosed
	}
	t.published = append(t.published, Published{Event: event, Payload: payload})
	events, loopback := t.events, t.loopback
	t.mu.Unlock()

	if loopback && events != nil {
		events.Deliver(event, payload)
	}
	return nil
}

// Close implements Transport
func (t *MemoryTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connected = false
	return nil
}

// Inject delivers an inbound payload as if pushed by the remote side
func (t *MemoryTransport) Inject(event string, payload []byte) {
	if events := t.sink(); events != nil {
		events.Deliver(event, payload)
	}
}

// Drop simulates an unrequested disconnect
func (t *MemoryTransport) Drop(err error) {
	t.mu.Lock()
	t.connected = false
	events := t.events
	t.mu.Unlock()

	if events != nil {
		events.TransportDisconnected(err)
	}
}

// FailReconnect simulates one failed reconnect attempt
func (t *MemoryTransport) FailReconnect(err error) {
	if events := t.sink(); events != nil {
		events.ReconnectAttemptFailed(err)
	}
}

// Reconnect simulates a successful reconnect
func (t *MemoryTransport) Reconnect() {
	t.mu.Lock()
	t.connected = true
	events := t.events
	t.mu.Unlock()

	if events != nil {
		events.TransportReconnected()
	}
}

// Published returns a copy of every payload published so far
func (t *MemoryTransport) Published() []Published {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Published(nil), t.published...)
}

// PublishedFor returns the payloads published under event
func (t *MemoryTransport) PublishedFor(event string) [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out [][]byte
	for _, p := range t.published {
		if p.Event == event {
			out = append(out, p.Payload)
		}
	}
	return out
}

// Reset forgets recorded payloads
func (t *MemoryTransport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.published = nil
}

func (t *MemoryTransport) sink() Events {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.events
}
