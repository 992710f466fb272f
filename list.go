// Package lists contains ArrayList, an insertion-ordered, random-access list backed by a single
// contiguous growable buffer, and Cursor, a bidirectional iterator that can edit the list it walks.
package lists

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bradenaw/juniper/iterator"
	"github.com/bradenaw/juniper/xslices"

	"github.com/bradenaw/lists/internal/xbuf"
)

// DefaultCapacity is the capacity of lists made by New and From.
const DefaultCapacity = 100

// List is the full set of operations supported by ArrayList.
type List[T comparable] interface {
	Collection[T]

	IsEmpty() bool
	Contains(v T) bool
	ContainsAll(c Collection[T]) bool
	IndexOf(v T) int
	LastIndexOf(v T) int

	Get(i int) (T, error)
	Set(i int, v T) (T, error)

	Add(v T) bool
	Insert(i int, v T) error
	AddAll(c Collection[T]) bool
	InsertAll(i int, c Collection[T]) (bool, error)

	Remove(v T) bool
	RemoveAt(i int) (T, error)
	RetainAll(c Collection[T]) bool
	RemoveAll(c Collection[T]) bool
	Clear()

	Cursor() *Cursor[T]
	CursorAt(i int) (*Cursor[T], error)
	// SubList returns an independent copy rather than a view, so it hands back the concrete
	// *ArrayList, which callers can use without type assertions to reach Copy, Cap, and the rest.
	SubList(lo, hi int) (*ArrayList[T], error)
	ToSlice() []T
	CopyTo(dst []T) []T
}

// ArrayList is a list of elements kept in insertion order in one contiguous buffer. Appends are
// amortized O(1); inserting or removing at index i moves every element after i.
//
// Searches compare elements with ==. A nil search target (nil pointer, interface, or channel) never
// matches anything, even a nil element of the list. A typed nil pointer held in an interface counts
// as nil. When T is an interface type, every element and search target must hold a comparable
// dynamic value: searches and the set-based bulk operations panic on values such as slices or maps,
// the same way == and map keys do.
//
// ArrayList is not safe for concurrent use.
type ArrayList[T comparable] struct {
	buf xbuf.Buffer[T]
}

var _ List[int] = &ArrayList[int]{}

// New returns an empty list with DefaultCapacity.
func New[T comparable]() *ArrayList[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity returns an empty list with room for capacity elements before it needs to grow.
func NewWithCapacity[T comparable](capacity int) *ArrayList[T] {
	return &ArrayList[T]{buf: xbuf.New[T](capacity)}
}

// From returns a new list holding the elements of c in iteration order. The list does not share
// storage with c.
func From[T comparable](c Collection[T]) *ArrayList[T] {
	l := New[T]()
	l.AddAll(c)
	return l
}

// FromSlice returns a new list holding a copy of s.
func FromSlice[T comparable](s []T) *ArrayList[T] {
	return From[T](Slice[T](s))
}

// Map returns a new list holding f applied to each element of l, in order.
func Map[T, U comparable](l *ArrayList[T], f func(T) U) *ArrayList[U] {
	return FromSlice(xslices.Map(l.buf.Live(), f))
}

// Equal returns true if a and b have the same length and equal elements at every index.
func Equal[T comparable](a, b *ArrayList[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.buf.At(i) != b.buf.At(i) {
			return false
		}
	}
	return true
}

// Copy returns a shallow copy of l.
func (l *ArrayList[T]) Copy() *ArrayList[T] {
	return From[T](l)
}

// Len returns the number of elements in the list.
func (l *ArrayList[T]) Len() int { return l.buf.Len() }

// Cap returns the number of elements the list can hold before it has to grow.
func (l *ArrayList[T]) Cap() int { return l.buf.Cap() }

// IsEmpty returns true if the list has no elements.
func (l *ArrayList[T]) IsEmpty() bool { return l.buf.Len() == 0 }

// Contains returns true if some element of the list is equal to v.
func (l *ArrayList[T]) Contains(v T) bool { return l.IndexOf(v) >= 0 }

// Iterate returns an iterator over the elements of the list. The list must not be structurally
// modified while the iterator is in use.
func (l *ArrayList[T]) Iterate() iterator.Iterator[T] {
	return &cursorIterator[T]{c: l.Cursor()}
}

// Get returns the element at index i.
func (l *ArrayList[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.buf.Len() {
		var zero T
		return zero, fmt.Errorf("%w: cannot get element at index %d from list of size %d",
			ErrOutOfRange, i, l.buf.Len())
	}
	return l.buf.At(i), nil
}

// Set replaces the element at index i with v and returns the element that was there.
func (l *ArrayList[T]) Set(i int, v T) (T, error) {
	if i < 0 || i >= l.buf.Len() {
		var zero T
		return zero, fmt.Errorf("%w: cannot set element at index %d in list of size %d",
			ErrOutOfRange, i, l.buf.Len())
	}
	old := l.buf.At(i)
	l.buf.SetAt(i, v)
	return old, nil
}

// Add appends v to the end of the list. It always returns true.
func (l *ArrayList[T]) Add(v T) bool {
	l.insert(l.buf.Len(), v)
	return true
}

// Insert inserts v at index i, moving the elements at i and after one place to the right. i may be
// equal to Len(), which appends.
func (l *ArrayList[T]) Insert(i int, v T) error {
	if i < 0 || i > l.buf.Len() {
		return fmt.Errorf("%w: cannot add element at index %d to list of size %d",
			ErrOutOfRange, i, l.buf.Len())
	}
	l.insert(i, v)
	return nil
}

func (l *ArrayList[T]) insert(i int, v T) {
	size := l.buf.Len()
	l.buf.Grow(size + 1)
	l.buf.ShiftRight(i, size-1, 1)
	l.buf.SetAt(i, v)
	l.buf.SetLen(size + 1)
}

// RemoveAt removes and returns the element at index i, moving the elements after it one place to
// the left.
func (l *ArrayList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.buf.Len() {
		var zero T
		return zero, fmt.Errorf("%w: cannot remove element at index %d from list of size %d",
			ErrOutOfRange, i, l.buf.Len())
	}
	v := l.buf.At(i)
	l.removeAt(i)
	return v, nil
}

func (l *ArrayList[T]) removeAt(i int) {
	size := l.buf.Len()
	l.buf.ShiftLeft(i+1, size-1, 1)
	l.buf.SetLen(size - 1)
}

// Remove removes the first element equal to v. Returns false if there was no such element.
func (l *ArrayList[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

// Clear removes every element. Capacity is kept.
func (l *ArrayList[T]) Clear() {
	l.buf.SetLen(0)
}

// IndexOf returns the index of the first element equal to v, or -1 if there is none.
func (l *ArrayList[T]) IndexOf(v T) int {
	if isNil(v) {
		return -1
	}
	for i, x := range l.buf.Live() {
		if x == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v, or -1 if there is none.
func (l *ArrayList[T]) LastIndexOf(v T) int {
	if isNil(v) {
		return -1
	}
	live := l.buf.Live()
	for i := len(live) - 1; i >= 0; i-- {
		if live[i] == v {
			return i
		}
	}
	return -1
}

// Cursor returns a Cursor positioned before the first element.
func (l *ArrayList[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{l: l}
}

// CursorAt returns a Cursor whose first Next returns the element at index i. i may be equal to
// Len(), in which case the cursor starts after the last element.
func (l *ArrayList[T]) CursorAt(i int) (*Cursor[T], error) {
	if i < 0 || i > l.buf.Len() {
		return nil, fmt.Errorf("%w: cannot iterate from index %d in list of size %d",
			ErrOutOfRange, i, l.buf.Len())
	}
	return &Cursor[T]{l: l, pos: i}, nil
}

// String formats the list as its elements in brackets, separated by spaces, e.g. [1 2 3].
func (l *ArrayList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range l.buf.Live() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Map, reflect.Slice, reflect.Func,
		reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
