package search

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/bihius/weather-app/internal/types"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingResolver answers every query with a single place named after it.
// Queries listed in block wait until their context is cancelled.
type recordingResolver struct {
	mu      sync.Mutex
	queries []string
	block   map[string]bool
	started chan string
}

func newRecordingResolver(block ...string) *recordingResolver {
	r := &recordingResolver{block: map[string]bool{}, started: make(chan string, 16)}
	for _, q := range block {
		r.block[q] = true
	}
	return r
}

func (r *recordingResolver) Resolve(ctx context.Context, query string, _ int) ([]types.Place, error) {
	r.mu.Lock()
	r.queries = append(r.queries, query)
	blocked := r.block[query]
	r.mu.Unlock()
	r.started <- query

	if blocked {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return []types.Place{{Name: query, Lat: 1, Lon: 1, DisplayName: query}}, nil
}

func (r *recordingResolver) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func newTestDebouncer(r Resolver) (*Debouncer, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDebouncer(r, clock, DefaultDelay, 10, logger), clock
}

func receive(t *testing.T, d *Debouncer) Result {
	t.Helper()
	select {
	case r := <-d.Results():
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a result")
		return Result{}
	}
}

func assertNoResult(t *testing.T, d *Debouncer) {
	t.Helper()
	select {
	case r := <-d.Results():
		t.Fatalf("unexpected result for %q", r.Query)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncer_OnlyLatestQueryIsResolved(t *testing.T) {
	resolver := newRecordingResolver()
	d, clock := newTestDebouncer(resolver)
	defer d.Close()

	d.Submit("P")
	clock.Advance(200 * time.Millisecond)
	d.Submit("Pa")
	clock.Advance(200 * time.Millisecond)
	seq := d.Submit("Paris")

	clock.Advance(499 * time.Millisecond)
	assertNoResult(t, d)

	clock.Advance(time.Millisecond)
	got := receive(t, d)

	assert.Equal(t, seq, got.Seq)
	assert.Equal(t, "Paris", got.Query)
	require.NoError(t, got.Err)
	require.Len(t, got.Places, 1)
	assert.Equal(t, []string{"Paris"}, resolver.calls())
}

func TestDebouncer_SupersededInFlightQueryIsCancelled(t *testing.T) {
	resolver := newRecordingResolver("slow")
	d, clock := newTestDebouncer(resolver)
	defer d.Close()

	d.Submit("slow")
	clock.Advance(DefaultDelay)
	assert.Equal(t, "slow", <-resolver.started)

	seq := d.Submit("fast")
	clock.Advance(DefaultDelay)

	got := receive(t, d)
	assert.Equal(t, seq, got.Seq)
	assert.Equal(t, "fast", got.Query)
	assertNoResult(t, d)
}

func TestDebouncer_SequenceIncreases(t *testing.T) {
	d, _ := newTestDebouncer(newRecordingResolver())
	defer d.Close()

	a := d.Submit("a")
	b := d.Submit("b")
	assert.Greater(t, b, a)
}

func TestDebouncer_Close(t *testing.T) {
	resolver := newRecordingResolver()
	d, clock := newTestDebouncer(resolver)

	d.Submit("Paris")
	d.Close()
	clock.Advance(DefaultDelay)

	_, open := <-d.Results()
	assert.False(t, open)
	assert.Empty(t, resolver.calls())

	// Idempotent and safe after close.
	d.Close()
	d.Submit("Rome")
}
