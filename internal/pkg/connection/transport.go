package connection

import (
	"context"
	"time"
)

// Transport is the push channel driven by the Manager. Implementations own
// their reconnect loop and report every lifecycle change through Events.
type Transport interface {
	Connect(ctx context.Context, events Events) error
	Publish(event string, payload []byte) error
	Close() error
}

// Events receives inbound payloads and lifecycle callbacks from a Transport
type Events interface {
	// Deliver hands an inbound payload to the bus
	Deliver(event string, payload []byte)
	// TransportDisconnected reports a drop the caller did not request
	TransportDisconnected(err error)
	// ReconnectAttemptFailed reports one failed reconnect attempt
	ReconnectAttemptFailed(err error)
	// TransportReconnected reports a successful reconnect
	TransportReconnected()
	// TransportClosed reports that the transport gave up or was closed
	TransportClosed()
}

// Emitter publishes payloads on the push channel
type Emitter interface {
	Emit(event string, payload interface{}) error
}

// Subscriber registers handlers on the event bus
type Subscriber interface {
	Subscribe(event string, handler Handler) *Subscription
}

// Scheduler registers pollers that run only while connected
type Scheduler interface {
	Every(name string, interval time.Duration, fn PollFunc) error
	CancelPoller(name string) bool
}
