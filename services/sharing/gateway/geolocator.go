package gateway

import (
	"context"
	"sync"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

type watch struct {
	onPosition func(models.Position)
	onError    func(error)
}

// PositionFeed is a Geolocator fed by positions pushed from the client
// device. Each pushed fix is delivered to every open watch.
type PositionFeed struct {
	mu      sync.Mutex
	last    *models.Position
	nextID  int
	watches map[int]watch
	denied  bool
}

// NewPositionFeed creates an empty feed
func NewPositionFeed() *PositionFeed {
	return &PositionFeed{watches: make(map[int]watch)}
}

// CurrentPosition returns the last pushed fix, or ErrNoPositionFix before
// the first push
func (f *PositionFeed) CurrentPosition(ctx context.Context) (models.Position, error) {
	if err := ctx.Err(); err != nil {
		return models.Position{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.denied {
		return models.Position{}, models.ErrPermissionDenied
	}
	if f.last == nil {
		return models.Position{}, models.ErrNoPositionFix
	}
	return *f.last, nil
}

// WatchPosition registers callbacks for every subsequent fix
func (f *PositionFeed) WatchPosition(onPosition func(models.Position), onError func(error)) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.denied {
		return 0, models.ErrPermissionDenied
	}
	f.nextID++
	f.watches[f.nextID] = watch{onPosition: onPosition, onError: onError}
	return f.nextID, nil
}

// ClearWatch removes a watch. Unknown ids are ignored.
func (f *PositionFeed) ClearWatch(watchID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.watches, watchID)
}

// Push records a fix and delivers it to the open watches
func (f *PositionFeed) Push(pos models.Position) error {
	if !pos.Coordinates.Valid() {
		return models.ErrInvalidLocation
	}

	f.mu.Lock()
	f.last = &pos
	f.denied = false
	targets := f.snapshot()
	f.mu.Unlock()

	for _, w := range targets {
		if w.onPosition != nil {
			w.onPosition(pos)
		}
	}
	return nil
}

// Deny revokes the permission and reports it to every open watch
func (f *PositionFeed) Deny() {
	f.mu.Lock()
	f.denied = true
	targets := f.snapshot()
	f.mu.Unlock()

	for _, w := range targets {
		if w.onError != nil {
			w.onError(models.ErrPermissionDenied)
		}
	}
}

// ActiveWatches returns the number of open watches
func (f *PositionFeed) ActiveWatches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watches)
}

func (f *PositionFeed) snapshot() []watch {
	out := make([]watch, 0, len(f.watches))
	for _, w := range f.watches {
		out = append(out, w)
	}
	return out
}
