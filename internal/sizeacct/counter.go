// Package sizeacct implements the size accounting component (C5): a single
// counter of cached record bytes, updated atomically so the
// evictor can read it without taking any shard lock.
package sizeacct

import "sync/atomic"

// Counter is an atomic byte counter. The zero value is ready to use (0
// bytes).
type Counter struct {
	v atomic.Int64
}

// Add adds delta (which may be negative, on eviction) and returns the new
// total.
func (c *Counter) Add(delta int64) int64 { return c.v.Add(delta) }

// Load returns the current total.
func (c *Counter) Load() int64 { return c.v.Load() }
