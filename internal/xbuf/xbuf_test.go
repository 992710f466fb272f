package xbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fill(b *Buffer[int], values ...int) {
	b.Grow(len(values))
	b.SetLen(len(values))
	for i, v := range values {
		b.SetAt(i, v)
	}
}

func TestGrowDoubles(t *testing.T) {
	b := New[int](4)
	fill(&b, 1, 2, 3, 4)
	require.Equal(t, 4, b.Cap())

	b.Grow(5)
	require.Equal(t, 8, b.Cap())
	require.Equal(t, []int{1, 2, 3, 4}, b.Live())

	b.Grow(8)
	require.Equal(t, 8, b.Cap())
}

func TestGrowToNeed(t *testing.T) {
	b := New[int](4)
	fill(&b, 1, 2)

	b.Grow(11)
	require.Equal(t, 11, b.Cap())
	require.Equal(t, []int{1, 2}, b.Live())

	z := New[int](0)
	z.Grow(1)
	require.Equal(t, 1, z.Cap())
}

func TestGrowNeverShrinks(t *testing.T) {
	b := New[int](16)
	b.Grow(2)
	require.Equal(t, 16, b.Cap())
}

func TestShiftRight(t *testing.T) {
	b := New[int](8)
	fill(&b, 1, 2, 3, 4, 5)

	b.ShiftRight(1, 4, 2)
	b.SetLen(7)
	require.Equal(t, []int{1, 2, 3, 2, 3, 4, 5}, b.Live())

	// Empty run.
	b.ShiftRight(7, 6, 1)
	require.Equal(t, []int{1, 2, 3, 2, 3, 4, 5}, b.Live())

	require.Panics(t, func() { b.ShiftRight(0, 6, 2) })
}

func TestShiftLeft(t *testing.T) {
	b := New[int](8)
	fill(&b, 1, 2, 3, 4, 5)

	b.ShiftLeft(2, 4, 2)
	b.SetLen(3)
	require.Equal(t, []int{3, 4, 5}, b.Live())

	require.Panics(t, func() { b.ShiftLeft(1, 2, 2) })
}

func TestSetLenZeroesReleasedSlots(t *testing.T) {
	b := New[int](4)
	fill(&b, 1, 2, 3, 4)

	b.SetLen(1)
	require.Equal(t, []int{1}, b.Live())
	b.SetLen(4)
	require.Equal(t, []int{1, 0, 0, 0}, b.Live())

	require.Panics(t, func() { b.SetLen(5) })
	require.Panics(t, func() { b.SetLen(-1) })
}
