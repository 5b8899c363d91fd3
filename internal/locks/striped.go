// Package locks implements a striped shard lock table: a fixed pool of
// reader/writer locks keyed by shard id, so that repeated lookups of the
// same shard id always dispatch to the same lock. Two unrelated shard ids
// may share a stripe; that only costs extra wait time under contention, it
// never affects correctness, since every operation on a shard still holds
// that shard's dispatched lock for its full duration.
package locks

import (
	"sync"

	"github.com/mtstreams/recordcache/model"
	"github.com/zeebo/xxh3"
)

// DefaultStripeCount is the default number of lock stripes, large enough
// that two independent shards are unlikely to collide under typical shard
// counts while keeping the table's memory footprint small.
const DefaultStripeCount = 1000

// Table is a fixed pool of reader/writer locks, dispatched by hashing a
// ShardID to a stripe index.
type Table struct {
	stripes []sync.RWMutex
}

// New creates a lock table with the given stripe count. A non-positive count
// falls back to DefaultStripeCount.
func New(stripeCount int) *Table {
	if stripeCount <= 0 {
		stripeCount = DefaultStripeCount
	}
	return &Table{stripes: make([]sync.RWMutex, stripeCount)}
}

// For returns the lock dispatched to shardID. Two calls with the same
// shardID always return the same *sync.RWMutex.
func (t *Table) For(shardID model.ShardID) *sync.RWMutex {
	idx := xxh3.HashString(string(shardID)) % uint64(len(t.stripes))
	return &t.stripes[idx]
}
