package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestBlockLifecycle(t *testing.T) {
	b := NewBlock([]int{1, 2, 3})
	assert.EqualValues(t, 1, b.Refs())
	assert.Equal(t, 3, b.Cap())

	b.Retain()
	assert.EqualValues(t, 2, b.Refs())

	b.Release()
	assert.EqualValues(t, 1, b.Refs())
	assert.NotNil(t, b.Buf())

	b.Release()
	assert.EqualValues(t, 0, b.Refs())
	assert.Nil(t, b.Buf(), "buffer must be dropped at refcount zero")
}

func TestBlockOverRelease(t *testing.T) {
	b := NewBlock([]int{1})
	b.Release()
	assert.Panics(t, func() { b.Release() })
}

func TestBlockCapacity(t *testing.T) {
	buf := make([]int, 2, 8)
	b := NewBlock(buf)
	assert.Equal(t, 8, b.Cap())
	assert.Len(t, b.Buf(), 8)
}

func TestTryUnwrap(t *testing.T) {
	t.Run("sole owner", func(t *testing.T) {
		b := NewBlock([]int{1, 2})
		buf, ok := b.TryUnwrap()
		require.True(t, ok)
		assert.Equal(t, []int{1, 2}, buf)
		assert.EqualValues(t, 0, b.Refs())
		assert.Nil(t, b.Buf())
	})

	t.Run("shared", func(t *testing.T) {
		b := NewBlock([]int{1, 2})
		b.Retain()

		_, ok := b.TryUnwrap()
		assert.False(t, ok)
		assert.EqualValues(t, 2, b.Refs(), "a failed unwrap must not consume a reference")

		b.Release()
		buf, ok := b.TryUnwrap()
		require.True(t, ok)
		assert.Equal(t, []int{1, 2}, buf)
	})
}

func TestConcurrentRetainRelease(t *testing.T) {
	const goroutines = 32
	const rounds = 1000

	b := NewBlock(make([]byte, 64))

	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < rounds; j++ {
				b.Retain()
				b.Release()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 1, b.Refs())
	assert.NotNil(t, b.Buf())
	b.Release()
	assert.EqualValues(t, 0, b.Refs())
}

func TestStats(t *testing.T) {
	before := ReadStats()

	b := NewBlock([]int{1})
	mid := ReadStats()
	assert.Equal(t, before.BlocksAllocated+1, mid.BlocksAllocated)
	assert.Equal(t, before.LiveBlocks+1, mid.LiveBlocks)

	b.Release()
	after := ReadStats()
	assert.Equal(t, before.BlocksFreed+1, after.BlocksFreed)
	assert.Equal(t, before.LiveBlocks, after.LiveBlocks)
}

func TestBlockString(t *testing.T) {
	b := NewBlock(make([]int, 4))
	assert.Equal(t, "Block{cap: 4, refs: 1}", b.String())
}
