package locks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtstreams/recordcache/model"
)

func TestNew_DefaultsNonPositiveStripeCount(t *testing.T) {
	tbl := New(0)
	assert.Len(t, tbl.stripes, DefaultStripeCount)

	tbl = New(-5)
	assert.Len(t, tbl.stripes, DefaultStripeCount)
}

func TestFor_SameShardSameMutex(t *testing.T) {
	tbl := New(16)
	a := tbl.For(model.ShardID("shard-1"))
	b := tbl.For(model.ShardID("shard-1"))
	assert.Same(t, a, b)
}

func TestFor_DistributesAcrossStripes(t *testing.T) {
	tbl := New(4)
	stripes := map[int]bool{}
	for i := 0; i < 100; i++ {
		mu := tbl.For(model.ShardID(string(rune('a' + i))))
		for idx := range tbl.stripes {
			if &tbl.stripes[idx] == mu {
				stripes[idx] = true
			}
		}
	}
	assert.Greater(t, len(stripes), 1)
}

func TestFor_LockUnlockRoundTrip(t *testing.T) {
	tbl := New(8)
	mu := tbl.For(model.ShardID("x"))
	mu.Lock()
	mu.Unlock()
	mu.RLock()
	mu.RUnlock()
}
