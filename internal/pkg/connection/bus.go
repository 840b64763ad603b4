package connection

import (
	"fmt"
	"sync"

	"github.com/piresc/crowdpulse/internal/pkg/logger"
)

// AllEvents subscribes a handler to every event name
const AllEvents = "*"

// Handler processes one inbound payload
type Handler func(payload []byte) error

// WildcardHandler processes every inbound payload together with its name
type WildcardHandler func(event string, payload []byte) error

type entry struct {
	id       uint64
	handler  Handler
	wildcard WildcardHandler
}

// bus is an ordered multi-handler event bus. Handlers for one name run in
// registration order; wildcard handlers run after them.
type bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]entry
}

func newBus() *bus {
	return &bus{handlers: make(map[string][]entry)}
}

// Subscription is a single registered handler
type Subscription struct {
	bus   *bus
	event string
	id    uint64
	once  sync.Once
}

// Event returns the event name the subscription listens on
func (s *Subscription) Event() string {
	return s.event
}

// Cancel removes this handler only. It is safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s.event, s.id)
	})
}

func (b *bus) add(event string, e entry) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	e.id = b.nextID
	b.handlers[event] = append(b.handlers[event], e)

	return &Subscription{bus: b, event: event, id: e.id}
}

func (b *bus) remove(event string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.handlers[event]
	for i, e := range entries {
		if e.id == id {
			kept := make([]entry, 0, len(entries)-1)
			kept = append(kept, entries[:i]...)
			kept = append(kept, entries[i+1:]...)
			b.handlers[event] = kept
			break
		}
	}
	if len(b.handlers[event]) == 0 {
		delete(b.handlers, event)
	}
}

func (b *bus) removeAll(event string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, event)
}

func (b *bus) count(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[event])
}

// dispatch invokes handlers on a snapshot so a handler may subscribe or
// cancel without deadlocking
func (b *bus) dispatch(event string, payload []byte) int {
	b.mu.RLock()
	named := append([]entry(nil), b.handlers[event]...)
	wild := append([]entry(nil), b.handlers[AllEvents]...)
	b.mu.RUnlock()

	for _, e := range named {
		invoke(event, func() error { return e.handler(payload) })
	}
	for _, e := range wild {
		invoke(event, func() error { return e.wildcard(event, payload) })
	}
	return len(named) + len(wild)
}

func invoke(event string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Event handler panicked",
				logger.String("event", event),
				logger.String("panic", fmt.Sprintf("%v", r)))
		}
	}()

	if err := fn(); err != nil {
		logger.Warn("Error processing event",
			logger.String("event", event),
			logger.Err(err))
	}
}
