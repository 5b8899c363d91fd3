package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type posTestRecord struct {
	seq SequenceNumber
}

func (r posTestRecord) SequenceNumber() SequenceNumber { return r.seq }
func (r posTestRecord) ByteSize() int64                { return 0 }

func TestNewPosition(t *testing.T) {
	p := NewPosition(ShardID("shard-1"), NewSequenceNumber(7))
	assert.Equal(t, ShardID("shard-1"), p.ShardID)
	assert.Equal(t, "7", p.SequenceNumber.String())
}

func TestAfter(t *testing.T) {
	r := posTestRecord{seq: NewSequenceNumber(9)}
	p := After(ShardID("shard-1"), r)
	assert.Equal(t, ShardID("shard-1"), p.ShardID)
	assert.Equal(t, "10", p.SequenceNumber.String())
}
