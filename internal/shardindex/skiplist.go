// Package shardindex implements the per-shard ordered map from segment start
// to Segment: floor/higher/get/put/remove, all O(log n) expected case,
// backed by a skip list (see DESIGN.md for why this is hand-rolled rather
// than built on a third-party ordered-map library). Level selection uses
// internal/shared/random's sharded generator rather than math/rand.
//
// Index holds no lock of its own: callers are responsible for external
// synchronization, mutating an Index only while holding its owning shard's
// write lock and reading it only while holding its read lock.
package shardindex

import (
	"github.com/mtstreams/recordcache/internal/segment"
	"github.com/mtstreams/recordcache/internal/shared/random"
	"github.com/mtstreams/recordcache/model"
)

const (
	maxLevel = 32
	p        = 0.25
)

type node struct {
	key     model.SequenceNumber
	value   *segment.Segment
	forward []*node
}

// Index is a sorted map keyed by segment start sequence number.
type Index struct {
	head   *node
	level  int
	length int
}

// New returns an empty shard index.
func New() *Index {
	return &Index{
		head:  &node{forward: make([]*node, maxLevel)},
		level: 1,
	}
}

// Len returns the number of segments currently indexed.
func (ix *Index) Len() int { return ix.length }

// IsEmpty reports whether the index holds no segments.
func (ix *Index) IsEmpty() bool { return ix.length == 0 }

// Get returns the segment stored under the exact key, if any.
func (ix *Index) Get(key model.SequenceNumber) (*segment.Segment, bool) {
	n := ix.findGreaterOrEqual(key)
	if n != nil && n.key.Equal(key) {
		return n.value, true
	}
	return nil, false
}

// FloorEntry returns the segment with the largest key <= key, if any.
func (ix *Index) FloorEntry(key model.SequenceNumber) (model.SequenceNumber, *segment.Segment, bool) {
	pred := ix.head
	for i := ix.level - 1; i >= 0; i-- {
		for pred.forward[i] != nil && pred.forward[i].key.Cmp(key) <= 0 {
			pred = pred.forward[i]
		}
	}
	if pred == ix.head {
		return model.SequenceNumber{}, nil, false
	}
	return pred.key, pred.value, true
}

// HigherEntry returns the segment with the smallest key > key, if any.
func (ix *Index) HigherEntry(key model.SequenceNumber) (model.SequenceNumber, *segment.Segment, bool) {
	pred := ix.head
	for i := ix.level - 1; i >= 0; i-- {
		for pred.forward[i] != nil && pred.forward[i].key.Cmp(key) <= 0 {
			pred = pred.forward[i]
		}
	}
	n := pred.forward[0]
	if n == nil {
		return model.SequenceNumber{}, nil, false
	}
	return n.key, n.value, true
}

// Put inserts or replaces the segment stored under key.
func (ix *Index) Put(key model.SequenceNumber, value *segment.Segment) {
	update := make([]*node, maxLevel)
	pred := ix.head
	for i := ix.level - 1; i >= 0; i-- {
		for pred.forward[i] != nil && pred.forward[i].key.Cmp(key) < 0 {
			pred = pred.forward[i]
		}
		update[i] = pred
	}

	if existing := pred.forward[0]; existing != nil && existing.key.Equal(key) {
		existing.value = value
		return
	}

	lvl := randomLevel()
	if lvl > ix.level {
		for i := ix.level; i < lvl; i++ {
			update[i] = ix.head
		}
		ix.level = lvl
	}

	n := &node{key: key, value: value, forward: make([]*node, lvl)}
	for i := 0; i < lvl; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	ix.length++
}

// Remove deletes the segment stored under key, if present, and returns it.
func (ix *Index) Remove(key model.SequenceNumber) (*segment.Segment, bool) {
	update := make([]*node, maxLevel)
	pred := ix.head
	for i := ix.level - 1; i >= 0; i-- {
		for pred.forward[i] != nil && pred.forward[i].key.Cmp(key) < 0 {
			pred = pred.forward[i]
		}
		update[i] = pred
	}

	target := pred.forward[0]
	if target == nil || !target.key.Equal(key) {
		return nil, false
	}

	for i := 0; i < ix.level; i++ {
		if update[i].forward[i] != target {
			break
		}
		update[i].forward[i] = target.forward[i]
	}
	for ix.level > 1 && ix.head.forward[ix.level-1] == nil {
		ix.level--
	}
	ix.length--
	return target.value, true
}

// findGreaterOrEqual returns the first node with key >= key, if any.
func (ix *Index) findGreaterOrEqual(key model.SequenceNumber) *node {
	pred := ix.head
	for i := ix.level - 1; i >= 0; i-- {
		for pred.forward[i] != nil && pred.forward[i].key.Cmp(key) < 0 {
			pred = pred.forward[i]
		}
	}
	return pred.forward[0]
}

func randomLevel() int {
	lvl := 1
	for lvl < maxLevel && random.Float64() < p {
		lvl++
	}
	return lvl
}
