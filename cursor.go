package lists

import (
	"fmt"
)

// Cursor is a position in an ArrayList that can move in both directions and edit the list in place.
//
// A Cursor sits between two elements. Next returns the element after it and Previous the element
// before it, moving the cursor over the returned element. Set and Remove act on the element most
// recently returned by Next or Previous, and are only allowed while that element has not been
// consumed by a Remove or Add.
//
// A Cursor reads and writes its list's buffer directly. If the list is structurally modified by
// anything other than this Cursor while it is in use, including another Cursor, the Cursor's
// behavior is undefined.
type Cursor[T comparable] struct {
	l   *ArrayList[T]
	pos int
	// Index of the element last returned by Next or Previous, valid only while editable.
	last     int
	editable bool
}

// HasNext returns true if Next will return an element.
func (c *Cursor[T]) HasNext() bool { return c.pos < c.l.buf.Len() }

// HasPrevious returns true if Previous will return an element.
func (c *Cursor[T]) HasPrevious() bool { return c.pos > 0 }

// NextIndex returns the index of the element Next would return, or Len() at the end of the list.
func (c *Cursor[T]) NextIndex() int { return c.pos }

// PreviousIndex returns the index of the element Previous would return, or -1 at the start of the
// list.
func (c *Cursor[T]) PreviousIndex() int { return c.pos - 1 }

// Next returns the element after the cursor and moves the cursor past it.
func (c *Cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, fmt.Errorf("%w: no element after index %d in list of size %d",
			ErrOutOfRange, c.pos-1, c.l.buf.Len())
	}
	c.last = c.pos
	c.pos++
	c.editable = true
	return c.l.buf.At(c.last), nil
}

// Previous returns the element before the cursor and moves the cursor back over it.
func (c *Cursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		var zero T
		return zero, fmt.Errorf("%w: no element before index 0", ErrOutOfRange)
	}
	c.pos--
	c.last = c.pos
	c.editable = true
	return c.l.buf.At(c.last), nil
}

// Set replaces the element last returned by Next or Previous with v. It may be called any number of
// times after a single Next or Previous.
func (c *Cursor[T]) Set(v T) error {
	if !c.editable {
		return fmt.Errorf("%w: cannot set element if add/remove has been called after the last "+
			"call to next/previous", ErrInvalidState)
	}
	c.l.buf.SetAt(c.last, v)
	return nil
}

// Remove removes the element last returned by Next or Previous from the list.
func (c *Cursor[T]) Remove() error {
	if !c.editable {
		return fmt.Errorf("%w: cannot remove element without first calling next/previous",
			ErrInvalidState)
	}
	c.l.removeAt(c.last)
	if c.last < c.pos {
		c.pos--
	}
	c.editable = false
	return nil
}

// Add inserts v into the list at the cursor. The cursor ends up after v, so a following Next is
// unaffected and a following Previous returns v.
func (c *Cursor[T]) Add(v T) {
	c.l.insert(c.pos, v)
	c.pos++
	c.editable = false
}
