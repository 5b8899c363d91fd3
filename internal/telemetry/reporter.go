// Package telemetry runs the cache's optional background stats reporter: a
// context-cancellable, ticker-driven goroutine that logs a structured
// snapshot of cache activity at a fixed interval. It logs exclusively
// through zerolog and ticks on an injectable clock.Clock rather than
// time.NewTicker directly, so tests can advance time deterministically
// instead of sleeping on the wall clock.
package telemetry

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/mtstreams/recordcache/config"
	"github.com/mtstreams/recordcache/internal/shared/bytes"
)

// cacher is the subset of *recordcache.Cache the reporter depends on. Kept
// as a narrow interface so the reporter can be tested against a fake.
type cacher interface {
	Len() int
	Mem() int64
	Metrics() (gets, puts, evictions, evictedBytes uint64)
}

// Reporter periodically logs a snapshot of cache activity. A Reporter
// constructed with a nil or disabled config is a valid no-op: Run returns
// immediately and the stop function it returns is safe to call.
type Reporter struct {
	cfg    *config.TelemetryConfig
	logger zerolog.Logger
	cache  cacher
	clock  clock.Clock

	cancel context.CancelFunc
}

// New constructs a Reporter. clk may be nil, in which case clock.New() (wall
// clock) is used; tests pass a clock.NewMock() instead.
func New(cfg *config.TelemetryConfig, logger zerolog.Logger, cache cacher, clk clock.Clock) *Reporter {
	if clk == nil {
		clk = clock.New()
	}
	return &Reporter{cfg: cfg, logger: logger, cache: cache, clock: clk}
}

// Run starts the background reporting loop if the reporter is enabled, and
// returns a context.CancelFunc-backed stop function. If disabled, Run does
// nothing and the returned function is a no-op.
func (r *Reporter) Run(ctx context.Context) (stop func()) {
	if r.cfg == nil || !r.cfg.Enabled {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	go r.loop(ctx)

	return cancel
}

func (r *Reporter) loop(ctx context.Context) {
	ticker := r.clock.Ticker(r.cfg.Interval)
	defer ticker.Stop()

	var prevGets, prevPuts, prevEvictions, prevEvictedBytes uint64

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gets, puts, evictions, evictedBytes := r.cache.Metrics()

			r.logger.Info().
				Str("interval", r.cfg.Interval.String()).
				Int("shards", r.cache.Len()).
				Str("size", bytes.FmtMem(uint64(r.cache.Mem()))).
				Uint64("gets", gets-prevGets).
				Uint64("puts", puts-prevPuts).
				Uint64("evictions", evictions-prevEvictions).
				Str("evicted", bytes.FmtMem(evictedBytes-prevEvictedBytes)).
				Msg("recordcache stats")

			prevGets, prevPuts, prevEvictions, prevEvictedBytes = gets, puts, evictions, evictedBytes
		}
	}
}
