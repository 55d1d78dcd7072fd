package buffer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing(t *testing.T) {
	r := NewRing[int](3)
	assert.Empty(t, r.Snapshot())
	assert.Equal(t, 3, r.Cap())

	r.Push(1)
	r.Push(2)
	assert.Equal(t, []int{1, 2}, r.Snapshot())

	r.Push(3)
	r.Push(4)
	r.Push(5)
	assert.Equal(t, []int{3, 4, 5}, r.Snapshot())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, uint64(2), r.Dropped())
}

func TestRingDefaultCapacity(t *testing.T) {
	assert.Equal(t, 1024, NewRing[string](0).Cap())
}

func TestRingConcurrentPush(t *testing.T) {
	r := NewRing[int](10)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Push(j)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, r.Len())
	assert.Equal(t, uint64(390), r.Dropped())
}
