package recordcache

import "sync/atomic"

// counters tracks cumulative cache activity as a small atomic struct with a
// snapshot method, avoiding a mutex on the hot path.
type counters struct {
	gets         atomic.Uint64
	puts         atomic.Uint64
	evictions    atomic.Uint64
	evictedBytes atomic.Uint64
}

func (c *counters) snapshot() (gets, puts, evictions, evictedBytes uint64) {
	return c.gets.Load(), c.puts.Load(), c.evictions.Load(), c.evictedBytes.Load()
}

// Metrics returns a snapshot of cumulative cache activity: the number of
// valid GetRecords calls served, the number of PutRecords calls that
// inserted a segment (puts trimmed to nothing are not counted), the number
// of segments evicted, and the cumulative byte size freed by eviction.
func (c *Cache) Metrics() (gets, puts, evictions, evictedBytes uint64) {
	return c.counters.snapshot()
}
