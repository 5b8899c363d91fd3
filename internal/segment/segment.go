// Package segment implements the cache's central immutable value: a
// half-open sequence-number interval of a shard, plus the records it covers.
//
// A Segment is built once via a constructor that enforces its own
// invariants and panics on misuse; every apparent "modification"
// (SubSegment) returns a new Segment rather than mutating the receiver.
package segment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mtstreams/recordcache/model"
)

// Segment is a cached half-open interval [Start, End) of a shard, plus the
// records in that range. Segments are immutable: every "modification"
// (SubSegment) returns a new Segment.
type Segment struct {
	start    model.SequenceNumber
	end      model.SequenceNumber
	records  []model.Record
	byteSize int64
}

// New builds a segment starting at start, with end computed as one past the
// last record's sequence number. Panics (programmer error) if records is
// empty, unsorted, or contains a sequence number below start.
func New(start model.SequenceNumber, records []model.Record) *Segment {
	invariant(len(records) > 0, "segment.New: records must be non-empty; use NewRange for an empty range")
	end := records[len(records)-1].SequenceNumber().Next()
	return NewRange(start, end, records)
}

// NewRange builds a segment over the explicit half-open range [start, end),
// which may be empty (start == end). Panics if start > end, if records are
// not strictly ascending by sequence number, or if any record falls outside
// [start, end).
func NewRange(start, end model.SequenceNumber, records []model.Record) *Segment {
	invariant(!end.Less(start), "segment.NewRange: start must be <= end")

	cp := make([]model.Record, len(records))
	copy(cp, records)

	var byteSize int64
	var prev model.SequenceNumber
	havePrev := false
	for _, r := range cp {
		sn := r.SequenceNumber()
		invariant(!sn.Less(start) && sn.Less(end), "segment.NewRange: record sequence number out of [start, end) range")
		if havePrev {
			invariant(prev.Less(sn), "segment.NewRange: records must be strictly ascending by sequence number")
		}
		prev, havePrev = sn, true
		byteSize += r.ByteSize()
	}

	return &Segment{start: start, end: end, records: cp, byteSize: byteSize}
}

func invariant(cond bool, msg string) {
	if !cond {
		panic("recordcache: internal inconsistency: " + msg)
	}
}

// Start returns the inclusive start of the segment's range.
func (s *Segment) Start() model.SequenceNumber { return s.start }

// End returns the exclusive end of the segment's range.
func (s *Segment) End() model.SequenceNumber { return s.end }

// ByteSize is the sum of the upstream byte sizes of Records().
func (s *Segment) ByteSize() int64 { return s.byteSize }

// Records returns the segment's records in ascending sequence-number order.
// The returned slice must be treated as read-only: segments are immutable.
func (s *Segment) Records() []model.Record { return s.records }

// IsEmpty reports whether the segment's range is empty (Start == End).
// Equivalent to len(Records()) == 0 && ByteSize() == 0.
func (s *Segment) IsEmpty() bool { return s.start.Equal(s.end) }

// RecordsFrom returns the suffix of Records() whose sequence numbers are >=
// seq. Precondition: Start <= seq < End. Runs in O(log n) via binary search.
func (s *Segment) RecordsFrom(seq model.SequenceNumber) []model.Record {
	invariant(!seq.Less(s.start) && seq.Less(s.end), "segment.RecordsFrom: seq out of segment range")
	if s.start.Equal(seq) {
		return s.records
	}
	return s.records[s.index(seq):]
}

// SubSegment returns the segment clipped to the intersection with [from, to).
// Either bound may be absent (nil), meaning "unbounded" on that side. If both
// are absent, s itself is returned. If both are present, from must be <= to.
// Clipping never widens the segment; if the intersection is empty the
// returned segment has IsEmpty() true and callers must not insert it.
func (s *Segment) SubSegment(from, to *model.SequenceNumber) *Segment {
	if from == nil && to == nil {
		return s
	}
	if from != nil && to != nil {
		invariant(!to.Less(*from), "segment.SubSegment: from must be <= to")
	}

	// Disjoint from [from, to): the intersection is empty.
	if from != nil && !from.Less(s.end) {
		return NewRange(*from, *from, nil)
	}
	if to != nil && !s.start.Less(*to) {
		return NewRange(s.start, s.start, nil)
	}

	// cf >= 0 means this segment's start is already at or after `from`.
	cf := 1
	if from != nil {
		cf = s.start.Cmp(*from)
	}
	// cl <= 0 means this segment's end is already at or before `to`.
	cl := -1
	if to != nil {
		cl = s.end.Cmp(*to)
	}

	switch {
	case cf >= 0 && cl <= 0:
		return s
	case cf >= 0:
		// ends after `to`: trim the tail.
		return NewRange(s.start, *to, s.records[:s.index(*to)])
	case cl <= 0:
		// starts before `from`: trim the head.
		return NewRange(*from, s.end, s.records[s.index(*from):])
	default:
		return NewRange(*from, *to, s.records[s.index(*from):s.index(*to)])
	}
}

// index returns the smallest index i such that Records()[i].SequenceNumber()
// >= seq, or len(Records()) if no such record exists. O(log n).
func (s *Segment) index(seq model.SequenceNumber) int {
	return sort.Search(len(s.records), func(i int) bool {
		return !s.records[i].SequenceNumber().Less(seq)
	})
}

// Equal reports structural equality over (start, end, records).
func (s *Segment) Equal(other *Segment) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if !s.start.Equal(other.start) || !s.end.Equal(other.end) {
		return false
	}
	if len(s.records) != len(other.records) {
		return false
	}
	for i := range s.records {
		a, b := s.records[i], other.records[i]
		if !a.SequenceNumber().Equal(b.SequenceNumber()) || a.ByteSize() != b.ByteSize() {
			return false
		}
	}
	return true
}

func (s *Segment) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Segment{start=%s, end=%s, records=%d, byteSize=%d}", s.start, s.end, len(s.records), s.byteSize)
	return b.String()
}
