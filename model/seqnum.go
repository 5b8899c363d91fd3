// Package model defines the public data types of the streams record cache:
// sequence numbers, shard identifiers, shard positions and the opaque record
// payload the cache stores.
package model

import "math/big"

// SequenceNumber is a non-negative, arbitrarily large integer position within
// a shard's totally ordered stream. Streams report sequence numbers that can
// exceed any fixed-width machine integer, so it is backed by math/big.
type SequenceNumber struct {
	v *big.Int
}

// NewSequenceNumber wraps an int64 sequence number. Intended for tests and
// call sites that know their values fit in a machine word; use
// SequenceNumberFromString for values that may not.
func NewSequenceNumber(n int64) SequenceNumber {
	return SequenceNumber{v: big.NewInt(n)}
}

// SequenceNumberFromString parses a decimal big-integer sequence number.
func SequenceNumberFromString(s string) (SequenceNumber, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return SequenceNumber{}, false
	}
	return SequenceNumber{v: v}, true
}

// IsZero reports whether this is the unset (nil) sequence number.
func (s SequenceNumber) IsZero() bool { return s.v == nil }

// String renders the decimal representation.
func (s SequenceNumber) String() string {
	if s.v == nil {
		return "<nil>"
	}
	return s.v.String()
}

// Cmp compares s to other: -1, 0, +1 per math/big.Int.Cmp.
func (s SequenceNumber) Cmp(other SequenceNumber) int {
	return s.v.Cmp(other.v)
}

// Less reports whether s < other.
func (s SequenceNumber) Less(other SequenceNumber) bool { return s.Cmp(other) < 0 }

// Equal reports whether s == other.
func (s SequenceNumber) Equal(other SequenceNumber) bool { return s.Cmp(other) == 0 }

// Next returns s + 1. Used to compute a segment's exclusive end from its last
// record's sequence number, and by After to compute where a
// consumer should resume after receiving a record.
func (s SequenceNumber) Next() SequenceNumber {
	return SequenceNumber{v: new(big.Int).Add(s.v, big.NewInt(1))}
}
