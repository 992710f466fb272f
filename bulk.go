package lists

import (
	"fmt"
)

// AddAll appends the elements of c in iteration order, growing the buffer at most once. Returns
// true if c was non-empty.
func (l *ArrayList[T]) AddAll(c Collection[T]) bool {
	n := c.Len()
	size := l.buf.Len()
	l.buf.Grow(size + n)
	l.buf.SetLen(size + n)
	l.fill(size, n, c)
	return n != 0
}

// InsertAll inserts the elements of c in iteration order starting at index i, moving the elements
// at i and after to the right. i may be equal to Len(), which appends. Returns true if c was
// non-empty.
func (l *ArrayList[T]) InsertAll(i int, c Collection[T]) (bool, error) {
	size := l.buf.Len()
	if i < 0 || i > size {
		return false, fmt.Errorf("%w: cannot add elements at index %d to list of size %d",
			ErrOutOfRange, i, size)
	}
	if other, ok := c.(*ArrayList[T]); ok && other == l {
		// The shift below would scramble l's own elements mid-iteration.
		c = Slice[T](l.ToSlice())
	}
	n := c.Len()
	l.buf.Grow(size + n)
	l.buf.ShiftRight(i, size-1, n)
	l.buf.SetLen(size + n)
	l.fill(i, n, c)
	return n != 0, nil
}

// fill writes the first n elements of c into [start, start+n).
func (l *ArrayList[T]) fill(start int, n int, c Collection[T]) {
	iter := c.Iterate()
	for i := start; i < start+n; i++ {
		x, ok := iter.Next()
		if !ok {
			break
		}
		l.buf.SetAt(i, x)
	}
}

// RetainAll removes every element that is not in c. Returns true if the list changed.
func (l *ArrayList[T]) RetainAll(c Collection[T]) bool {
	lookup := setOf(c)
	return l.removeIf(func(x T) bool {
		_, ok := lookup[x]
		return !ok
	})
}

// RemoveAll removes every element that is in c. Returns true if the list changed.
func (l *ArrayList[T]) RemoveAll(c Collection[T]) bool {
	lookup := setOf(c)
	return l.removeIf(func(x T) bool {
		_, ok := lookup[x]
		return ok
	})
}

// removeIf compacts the elements that don't satisfy drop to the front of the buffer in one pass.
func (l *ArrayList[T]) removeIf(drop func(T) bool) bool {
	size := l.buf.Len()
	j := 0
	for i := 0; i < size; i++ {
		x := l.buf.At(i)
		if drop(x) {
			continue
		}
		if i != j {
			l.buf.SetAt(j, x)
		}
		j++
	}
	l.buf.SetLen(j)
	return j != size
}

// ContainsAll returns true if every element of c is equal to some element of the list.
func (l *ArrayList[T]) ContainsAll(c Collection[T]) bool {
	lookup := setOf[T](l)
	iter := c.Iterate()
	for {
		x, ok := iter.Next()
		if !ok {
			return true
		}
		if _, ok := lookup[x]; !ok {
			return false
		}
	}
}

func setOf[T comparable](c Collection[T]) map[T]struct{} {
	s := make(map[T]struct{}, c.Len())
	iter := c.Iterate()
	for {
		x, ok := iter.Next()
		if !ok {
			break
		}
		s[x] = struct{}{}
	}
	return s
}

// SubList returns a new list holding a copy of the elements in [lo, hi). Changes to either list are
// not reflected in the other.
func (l *ArrayList[T]) SubList(lo, hi int) (*ArrayList[T], error) {
	size := l.buf.Len()
	if lo < 0 || lo >= size || hi < 0 || hi > size || lo > hi {
		return nil, fmt.Errorf("%w: cannot take sublist from index %d to index %d of list of size %d",
			ErrOutOfRange, lo, hi, size)
	}
	return FromSlice(l.buf.Live()[lo:hi]), nil
}

// ToSlice returns a copy of the elements of the list.
func (l *ArrayList[T]) ToSlice() []T {
	out := make([]T, l.buf.Len())
	copy(out, l.buf.Live())
	return out
}

// CopyTo copies the elements of the list into dst and returns it, if dst is long enough. Otherwise
// it returns a newly allocated slice. If dst is longer than the list, dst[Len()] is set to the zero
// value to mark the end.
func (l *ArrayList[T]) CopyTo(dst []T) []T {
	size := l.buf.Len()
	if len(dst) < size {
		dst = make([]T, size)
	}
	copy(dst, l.buf.Live())
	if len(dst) > size {
		var zero T
		dst[size] = zero
	}
	return dst
}
