package telemetry

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtstreams/recordcache/config"
)

type fakeCache struct {
	mem    int64
	length int
	gets   uint64
}

func (f *fakeCache) Len() int   { return f.length }
func (f *fakeCache) Mem() int64 { return f.mem }
func (f *fakeCache) Metrics() (gets, puts, evictions, evictedBytes uint64) {
	return f.gets, 0, 0, 0
}

func TestReporter_DisabledConfigIsNoop(t *testing.T) {
	r := New(nil, zerolog.Nop(), &fakeCache{}, nil)
	stop := r.Run(context.Background())
	stop() // must not panic
}

func TestReporter_TicksAndLogs(t *testing.T) {
	var lines int32
	writer := countingWriter{n: &lines}
	logger := zerolog.New(writer)

	mock := clock.NewMock()
	cache := &fakeCache{mem: 100, length: 2, gets: 5}

	r := New(&config.TelemetryConfig{Enabled: true, Interval: time.Second}, logger, cache, mock)
	stop := r.Run(context.Background())
	defer stop()

	// Give the reporter goroutine a chance to register its ticker before
	// advancing the mock clock.
	time.Sleep(10 * time.Millisecond)

	mock.Add(time.Second)
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&lines) >= 1
	}, time.Second, time.Millisecond)

	mock.Add(time.Second)
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&lines) >= 2
	}, time.Second, time.Millisecond)

	assert.GreaterOrEqual(t, atomic.LoadInt32(&lines), int32(2))
}

type countingWriter struct {
	n *int32
}

func (w countingWriter) Write(p []byte) (int, error) {
	atomic.AddInt32(w.n, 1)
	return len(p), nil
}
