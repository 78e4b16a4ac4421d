package vecshard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	shard := Wrap([]rune{'y', 'e', 'e', 't'})

	v, ok := shard.Next()
	require.True(t, ok)
	assert.Equal(t, 'y', v)

	v, ok = shard.Next()
	require.True(t, ok)
	assert.Equal(t, 'e', v)

	// the undrained tail is still indexable
	assert.Equal(t, []rune{'e', 't'}, shard.Items())
	assert.Equal(t, 2, shard.Remaining())
}

func TestNextBack(t *testing.T) {
	shard := Wrap([]int{1, 2, 3})

	v, ok := shard.NextBack()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = shard.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = shard.NextBack()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = shard.NextBack()
	assert.False(t, ok)
	_, ok = shard.Next()
	assert.False(t, ok)
}

func TestDrainExhaustion(t *testing.T) {
	shard := Wrap([]int{0, 1, 2, 3, 4, 5, 6, 7})

	// drain from both ends until front and back meet
	want := 8
	for {
		if _, ok := shard.Next(); !ok {
			break
		}
		want--
		assert.Equal(t, want, shard.Remaining())
		assert.Equal(t, want, shard.Len())

		if _, ok := shard.NextBack(); !ok {
			break
		}
		want--
		assert.Equal(t, want, shard.Remaining())
	}

	assert.Equal(t, 0, shard.Remaining())
	_, ok := shard.Next()
	assert.False(t, ok)
	_, ok = shard.NextBack()
	assert.False(t, ok)
}

func TestDrainSeq(t *testing.T) {
	shard := Wrap([]int{1, 2, 3, 4})

	var got []int
	for v := range shard.Drain() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, shard.Remaining())

	got = got[:0]
	for v := range shard.DrainBack() {
		got = append(got, v)
	}
	assert.Equal(t, []int{4, 3}, got)
	assert.Equal(t, 0, shard.Remaining())
}

func TestDrainingZeroesSlots(t *testing.T) {
	x := 42
	shard := Wrap([]*int{&x, &x, &x})
	block := shard.block

	for range shard.Drain() {
	}

	// consumed slots no longer pin the elements
	for i, p := range block.Buf() {
		assert.Nil(t, p, "slot %d", i)
	}

	// draining does not give up co-ownership; that stays explicit
	assert.EqualValues(t, 1, block.Refs())
	shard.Release()
	assert.EqualValues(t, 0, block.Refs())
}

// Dropping one shard and draining its sibling must account for every
// element exactly once.
func TestElementsReleasedAcrossShards(t *testing.T) {
	x := 0
	ptrs := make([]*int, 20)
	for i := range ptrs {
		ptrs[i] = &x
	}

	left, right := SplitSlice(ptrs, 10)
	block := left.block

	left.Release()

	n := 0
	for p := range right.Drain() {
		assert.Same(t, &x, p)
		n++
	}
	assert.Equal(t, 10, n)

	right.Release()
	assert.EqualValues(t, 0, block.Refs())
	assert.Nil(t, block.Buf())
}
