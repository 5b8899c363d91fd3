package model

// ShardID identifies an independent sub-stream with its own totally ordered
// sequence-number space. It is opaque, hashable and comparable — a plain
// string is sufficient and keeps it usable directly as a Go map key.
type ShardID string

// Record is the opaque payload the cache stores: a sequence-numbered,
// byte-sized value. The cache never interprets the payload itself.
type Record interface {
	SequenceNumber() SequenceNumber
	ByteSize() int64
}
