package connection

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/logger"
)

// PollFunc is one cycle of a periodic poller
type PollFunc func(ctx context.Context) error

type poller struct {
	name     string
	interval time.Duration
	fn       PollFunc
	cancel   context.CancelFunc
}

// pollers keeps named fixed-cadence jobs. Jobs only tick while the registry
// is running, which the Manager ties to the connected state.
type pollers struct {
	mu      sync.Mutex
	running bool
	jobs    map[string]*poller
	active  int64
	wg      sync.WaitGroup
}

func newPollers() *pollers {
	return &pollers{jobs: make(map[string]*poller)}
}

func (p *pollers) register(name string, interval time.Duration, fn PollFunc) error {
	if interval <= 0 {
		return fmt.Errorf("poller %s: interval must be positive, got %s", name, interval)
	}
	if fn == nil {
		return fmt.Errorf("poller %s: nil poll function", name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if old, ok := p.jobs[name]; ok {
		p.stopLocked(old)
	}

	job := &poller{name: name, interval: interval, fn: fn}
	p.jobs[name] = job
	if p.running {
		p.startLocked(job)
	}
	return nil
}

func (p *pollers) cancel(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	job, ok := p.jobs[name]
	if !ok {
		return false
	}
	p.stopLocked(job)
	delete(p.jobs, name)
	return true
}

func (p *pollers) resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}
	p.running = true
	for _, job := range p.jobs {
		p.startLocked(job)
	}
}

func (p *pollers) pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.running = false
	for _, job := range p.jobs {
		p.stopLocked(job)
	}
}

// closeAndWait stops and forgets every job, then waits for in-flight cycles
func (p *pollers) closeAndWait() {
	p.mu.Lock()
	p.running = false
	for name, job := range p.jobs {
		p.stopLocked(job)
		delete(p.jobs, name)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *pollers) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.jobs))
	for name := range p.jobs {
		names = append(names, name)
	}
	return names
}

func (p *pollers) activeCount() int {
	return int(atomic.LoadInt64(&p.active))
}

func (p *pollers) startLocked(job *poller) {
	if job.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	job.cancel = cancel

	p.wg.Add(1)
	atomic.AddInt64(&p.active, 1)
	go func() {
		defer p.wg.Done()
		defer atomic.AddInt64(&p.active, -1)
		runPoller(ctx, job.name, job.interval, job.fn)
	}()
}

func (p *pollers) stopLocked(job *poller) {
	if job.cancel != nil {
		job.cancel()
		job.cancel = nil
	}
}

func runPoller(ctx context.Context, name string, interval time.Duration, fn PollFunc) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCycle(ctx, name, fn)
		}
	}
}

// runCycle isolates one cycle so an error or panic never halts the poller
func runCycle(ctx context.Context, name string, fn PollFunc) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Poller cycle panicked",
				logger.String("poller", name),
				logger.String("panic", fmt.Sprintf("%v", r)))
		}
	}()

	if err := fn(ctx); err != nil {
		logger.Warn("Poller cycle failed",
			logger.String("poller", name),
			logger.Err(err))
	}
}
