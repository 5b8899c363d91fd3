package model

// Position identifies a point in a shard's stream: "starting at this
// sequence number in this shard".
type Position struct {
	ShardID        ShardID
	SequenceNumber SequenceNumber
}

// NewPosition builds a Position from a shard id and sequence number.
func NewPosition(shardID ShardID, seq SequenceNumber) Position {
	return Position{ShardID: shardID, SequenceNumber: seq}
}

// After returns the position immediately following record, i.e. the same
// shard with sequence number record.SequenceNumber()+1.
func After(shardID ShardID, record Record) Position {
	return Position{ShardID: shardID, SequenceNumber: record.SequenceNumber().Next()}
}
