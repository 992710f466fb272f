package lists

import (
	"github.com/bradenaw/juniper/iterator"
)

// Collection is a finite group of elements that can be iterated. The bulk operations of ArrayList
// take Collections, and *ArrayList itself is one.
type Collection[T any] interface {
	// Len returns the number of elements Iterate will produce.
	Len() int
	// Iterate returns an iterator over the elements of the collection.
	Iterate() iterator.Iterator[T]
}

// Slice adapts a plain slice into a Collection.
type Slice[T any] []T

var _ Collection[int] = Slice[int]{}

func (s Slice[T]) Len() int                      { return len(s) }
func (s Slice[T]) Iterate() iterator.Iterator[T] { return iterator.Slice([]T(s)) }

var _ iterator.Iterator[int] = &cursorIterator[int]{}

// cursorIterator exposes a Cursor as a juniper iterator.
type cursorIterator[T comparable] struct {
	c *Cursor[T]
}

func (it *cursorIterator[T]) Next() (T, bool) {
	if !it.c.HasNext() {
		var zero T
		return zero, false
	}
	item, _ := it.c.Next()
	return item, true
}
