package insertlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtstreams/recordcache/model"
)

func TestQueue_PopEmptyFails(t *testing.T) {
	q := New()
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := New()
	for i := int64(0); i < 5; i++ {
		q.Push(Entry{ShardID: model.ShardID("s"), Start: model.NewSequenceNumber(i)})
	}
	for i := int64(0); i < 5; i++ {
		e, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, int64(mustInt(e.Start.String())))
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestQueue_GrowsPastInitialCapacity(t *testing.T) {
	q := New()
	const n = 1000
	for i := int64(0); i < n; i++ {
		q.Push(Entry{ShardID: model.ShardID("s"), Start: model.NewSequenceNumber(i)})
	}
	for i := int64(0); i < n; i++ {
		e, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, int64(mustInt(e.Start.String())))
	}
}

func TestQueue_NeverDropsUnderWraparound(t *testing.T) {
	q := New()
	for round := 0; round < 10; round++ {
		for i := 0; i < 10; i++ {
			q.Push(Entry{ShardID: model.ShardID("s"), Start: model.NewSequenceNumber(int64(i))})
		}
		for i := 0; i < 5; i++ {
			_, ok := q.Pop()
			require.True(t, ok)
		}
	}
	count := 0
	for {
		if _, ok := q.Pop(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 50, count)
}

func mustInt(s string) int {
	n := 0
	neg := false
	for i, c := range s {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n
}
