package lists

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorSetAndRemove(t *testing.T) {
	l := FromSlice([]int{10, 20, 30})
	c := l.Cursor()

	v, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, 10, v)

	require.NoError(t, c.Set(99))
	require.Equal(t, []int{99, 20, 30}, l.ToSlice())

	v, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, 20, v)

	require.NoError(t, c.Remove())
	require.Equal(t, []int{99, 30}, l.ToSlice())

	require.ErrorIs(t, c.Set(5), ErrInvalidState)
	require.ErrorIs(t, c.Remove(), ErrInvalidState)
	require.Equal(t, []int{99, 30}, l.ToSlice())

	v, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, 30, v)
	require.False(t, c.HasNext())
}

func TestCursorNeedsRead(t *testing.T) {
	l := FromSlice([]int{1, 2})
	c := l.Cursor()
	require.ErrorIs(t, c.Set(5), ErrInvalidState)
	require.ErrorIs(t, c.Remove(), ErrInvalidState)
	require.Equal(t, []int{1, 2}, l.ToSlice())
}

func TestCursorSetRepeatable(t *testing.T) {
	l := FromSlice([]int{1, 2})
	c := l.Cursor()
	_, err := c.Next()
	require.NoError(t, err)
	require.NoError(t, c.Set(5))
	require.NoError(t, c.Set(6))
	require.Equal(t, []int{6, 2}, l.ToSlice())
}

func TestCursorBounds(t *testing.T) {
	l := FromSlice([]int{1})
	c := l.Cursor()

	require.False(t, c.HasPrevious())
	require.Equal(t, 0, c.NextIndex())
	require.Equal(t, -1, c.PreviousIndex())
	_, err := c.Previous()
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = c.Next()
	require.NoError(t, err)
	require.False(t, c.HasNext())
	require.Equal(t, 1, c.NextIndex())
	require.Equal(t, 0, c.PreviousIndex())
	_, err = c.Next()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCursorBackward(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})
	c, err := l.CursorAt(l.Len())
	require.NoError(t, err)

	var got []string
	for c.HasPrevious() {
		v, err := c.Previous()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []string{"c", "b", "a"}, got)
	require.Equal(t, 0, c.NextIndex())
}

func TestCursorEditAfterPrevious(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})
	c, err := l.CursorAt(2)
	require.NoError(t, err)

	v, err := c.Previous()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	require.NoError(t, c.Set("B"))
	require.Equal(t, []string{"a", "B", "c"}, l.ToSlice())

	require.NoError(t, c.Remove())
	require.Equal(t, []string{"a", "c"}, l.ToSlice())
	require.Equal(t, 1, c.NextIndex())

	v, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, "c", v)
}

func TestCursorAdd(t *testing.T) {
	l := FromSlice([]int{1, 3})
	c := l.Cursor()

	_, err := c.Next()
	require.NoError(t, err)
	c.Add(2)
	require.Equal(t, []int{1, 2, 3}, l.ToSlice())
	require.Equal(t, 2, c.NextIndex())
	require.ErrorIs(t, c.Set(0), ErrInvalidState)

	v, err := c.Previous()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	v, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	v, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestCursorAddGrows(t *testing.T) {
	l := NewWithCapacity[int](1)
	c := l.Cursor()
	for i := 0; i < 5; i++ {
		c.Add(i)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, l.ToSlice())
	require.False(t, c.HasNext())
}

func TestCursorAt(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	c, err := l.CursorAt(1)
	require.NoError(t, err)
	v, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	_, err = l.CursorAt(4)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = l.CursorAt(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = New[int]().CursorAt(0)
	require.NoError(t, err)
}

func TestCursorRemoveAll(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5, 6})
	c := l.Cursor()
	for c.HasNext() {
		v, err := c.Next()
		require.NoError(t, err)
		if v%2 == 0 {
			require.NoError(t, c.Remove())
		}
	}
	require.Equal(t, []int{1, 3, 5}, l.ToSlice())
}
