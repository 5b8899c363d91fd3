package recordcache

import (
	"fmt"
	"sync"

	"github.com/mtstreams/recordcache/config"
	"github.com/mtstreams/recordcache/internal/insertlog"
	"github.com/mtstreams/recordcache/internal/locks"
	"github.com/mtstreams/recordcache/internal/segment"
	"github.com/mtstreams/recordcache/internal/shardindex"
	"github.com/mtstreams/recordcache/internal/sizeacct"
	"github.com/mtstreams/recordcache/model"
)

// Cache is the streams record cache facade: it owns the shard lock table,
// the per-shard ordered indices, the insertion-order eviction log, and the
// size counter, and exposes GetRecords/PutRecords.
//
// A Cache must be created via New; the zero value is not usable.
type Cache struct {
	maxRecordsByteSize int64

	locks *locks.Table

	// shards maps model.ShardID -> *shardindex.Index. A sync.Map rather than
	// a plain map+mutex because its own bookkeeping (lazy-create on first
	// insert, delete on last-segment-eviction) happens from goroutines that
	// may be holding different stripes of the lock table for different shard
	// ids — two unrelated shards must be able to mutate the top-level
	// registry concurrently without contending on a single global mutex.
	shards sync.Map

	insertLog *insertlog.Queue
	size      sizeacct.Counter
	counters  counters
}

// New constructs a cache from cfg. A nil cfg is valid and means "no byte
// budget" (maxRecordsByteSize of 0): a degenerate but legal configuration
// where every put immediately triggers full eviction, including of itself.
func New(cfg *config.Config) *Cache {
	stripeCount := locks.DefaultStripeCount
	var maxBytes uint64
	if cfg != nil {
		maxBytes = cfg.MaxRecordsByteSize
		if cfg.Locks.Enabled() && cfg.Locks.StripeCount > 0 {
			stripeCount = cfg.Locks.StripeCount
		}
	}
	return &Cache{
		maxRecordsByteSize: int64(maxBytes),
		locks:              locks.New(stripeCount),
		insertLog:          insertlog.New(),
	}
}

// Len returns the number of shards currently holding at least one segment.
func (c *Cache) Len() int {
	n := 0
	c.shards.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Mem returns the current total of cached record bytes.
func (c *Cache) Mem() int64 { return c.size.Load() }

// GetRecords returns up to limit records starting at position, stitching
// together consecutive cached segments as long as each one's end exactly
// meets the next one's start. It stops and returns what it has as soon as it
// hits a gap (a cached segment ending before the next one begins) or runs
// out of cached segments altogether — a gap means "unknown", not "empty",
// so callers must not treat a short result as proof nothing more exists
// upstream.
//
// The call is a pure read: it takes the shard's read lock, never mutates any
// index, never triggers eviction, and never changes the size counter.
func (c *Cache) GetRecords(position model.Position, limit int) ([]model.Record, error) {
	if position.SequenceNumber.IsZero() {
		return nil, fmt.Errorf("getRecords: position is required: %w", ErrInvalidArgument)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("getRecords: limit must be > 0, got %d: %w", limit, ErrInvalidArgument)
	}

	mu := c.locks.For(position.ShardID)
	mu.RLock()
	defer mu.RUnlock()

	c.counters.gets.Add(1)

	idxAny, ok := c.shards.Load(position.ShardID)
	if !ok {
		return []model.Record{}, nil
	}
	idx := idxAny.(*shardindex.Index)

	_, floor, ok := idx.FloorEntry(position.SequenceNumber)
	if !ok || floor.End().Cmp(position.SequenceNumber) <= 0 {
		// No segment at or below the requested position, or the preceding
		// segment ends at or before it: nothing cached for this request.
		return []model.Record{}, nil
	}

	result := make([]model.Record, 0, limit)
	result = appendUpTo(result, floor.RecordsFrom(position.SequenceNumber), limit)

	cur := floor
	for len(result) < limit {
		next, ok := idx.Get(cur.End())
		if !ok {
			break // gap: the chain of adjacent segments is broken
		}
		result = appendUpTo(result, next.Records(), limit)
		cur = next
	}

	return result, nil
}

func appendUpTo(dst, src []model.Record, limit int) []model.Record {
	remaining := limit - len(dst)
	if len(src) > remaining {
		src = src[:remaining]
	}
	return append(dst, src...)
}

// PutRecords inserts records, which the caller asserts collectively
// correspond to the shard starting at position.SequenceNumber. Records (or
// parts of the candidate segment) that overlap an existing neighbouring
// segment are trimmed away before insertion; re-inserting a segment that is
// already fully covered by its neighbours is therefore a no-op.
func (c *Cache) PutRecords(position model.Position, records []model.Record) error {
	if position.SequenceNumber.IsZero() {
		return fmt.Errorf("putRecords: position is required: %w", ErrInvalidArgument)
	}
	if len(records) == 0 {
		return fmt.Errorf("putRecords: records must be non-empty: %w", ErrInvalidArgument)
	}

	candidate := segment.New(position.SequenceNumber, records)

	mu := c.locks.For(position.ShardID)
	mu.Lock()

	idxAny, _ := c.shards.LoadOrStore(position.ShardID, shardindex.New())
	idx := idxAny.(*shardindex.Index)

	var lower, upper *model.SequenceNumber
	if _, floor, ok := idx.FloorEntry(position.SequenceNumber); ok {
		end := floor.End()
		lower = &end
	}
	if _, higher, ok := idx.HigherEntry(position.SequenceNumber); ok {
		start := higher.Start()
		upper = &start
	}

	trimmed := candidate.SubSegment(lower, upper)
	if !trimmed.IsEmpty() {
		idx.Put(trimmed.Start(), trimmed)
		c.insertLog.Push(insertlog.Entry{ShardID: position.ShardID, Start: trimmed.Start()})
		c.size.Add(trimmed.ByteSize())
		c.counters.puts.Add(1)
	}

	mu.Unlock()

	c.evict()
	return nil
}

// evict removes segments in insertion order until the size counter is at or
// below the configured maximum, regardless of how recently each segment was
// read.
func (c *Cache) evict() {
	for c.size.Load() > c.maxRecordsByteSize {
		entry, ok := c.insertLog.Pop()
		if !ok {
			// Another goroutine evicted concurrently; size will be
			// rechecked on the next PutRecords call.
			return
		}

		mu := c.locks.For(entry.ShardID)
		mu.Lock()
		idxAny, ok := c.shards.Load(entry.ShardID)
		if ok {
			idx := idxAny.(*shardindex.Index)
			if evicted, ok := idx.Remove(entry.Start); ok {
				c.size.Add(-evicted.ByteSize())
				c.counters.evictions.Add(1)
				c.counters.evictedBytes.Add(uint64(evicted.ByteSize()))
				if idx.IsEmpty() {
					c.shards.Delete(entry.ShardID)
				}
			}
			// Missing entry: benign race with a concurrent evictor: skip.
		}
		mu.Unlock()
	}
}
