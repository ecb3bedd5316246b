// Package search debounces interactive place searches. Keystrokes arrive
// faster than the geocoder's rate limit allows, so only the query that stays
// unchanged for the quiet period is resolved, and only the newest result is
// ever delivered.
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bihius/weather-app/internal/types"
	"github.com/jonboulle/clockwork"
)

const DefaultDelay = 500 * time.Millisecond

// Resolver is satisfied by location.Service.
type Resolver interface {
	Resolve(ctx context.Context, query string, limit int) ([]types.Place, error)
}

// Result is the outcome of one resolved query. Seq increases with every
// Submit, so a consumer can tell which query a result belongs to.
type Result struct {
	Seq    uint64
	Query  string
	Places []types.Place
	Err    error
}

type Debouncer struct {
	resolver Resolver
	clock    clockwork.Clock
	delay    time.Duration
	limit    int
	logger   *slog.Logger
	results  chan Result

	mu     sync.Mutex
	seq    uint64
	timer  clockwork.Timer
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

func NewDebouncer(resolver Resolver, clock clockwork.Clock, delay time.Duration, limit int, logger *slog.Logger) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		resolver: resolver,
		clock:    clock,
		delay:    delay,
		limit:    limit,
		logger:   logger.With("component", "search-debouncer"),
		results:  make(chan Result, 1),
	}
}

// Results delivers the newest result. An unread result is replaced when a
// newer one arrives.
func (d *Debouncer) Results() <-chan Result {
	return d.results
}

// Submit restarts the quiet period with query and cancels any resolution
// still running for an earlier one. It returns the query's sequence number.
func (d *Debouncer) Submit(query string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return d.seq
	}

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq, query) })
	return seq
}

func (d *Debouncer) fire(seq uint64, query string) {
	d.mu.Lock()
	if d.closed || seq != d.seq {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	defer d.wg.Done()
	defer cancel()

	places, err := d.resolver.Resolve(ctx, query, d.limit)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || seq != d.seq {
		d.logger.Debug("dropping stale result", "query", query, "seq", seq, "latest", d.seq)
		return
	}
	d.cancel = nil

	select {
	case <-d.results:
	default:
	}
	d.results <- Result{Seq: seq, Query: query, Places: places, Err: err}
}

// Close stops pending work, waits for in-flight resolutions and closes the
// results channel. Submit after Close is a no-op.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.mu.Unlock()

	d.wg.Wait()
	close(d.results)
}
