// Package xbuf is a contiguous, growable buffer with an explicit logical length, and the in-place
// shift primitives used to open and close gaps in it.
package xbuf

import "fmt"

// Buffer holds elements at [0, Len()) of a backing slice whose length is the capacity. Slots at or
// past Len() are zero or stale and are never handed out.
type Buffer[T any] struct {
	data []T
	size int
}

func New[T any](capacity int) Buffer[T] {
	return Buffer[T]{data: make([]T, capacity)}
}

func (b *Buffer[T]) Len() int { return b.size }
func (b *Buffer[T]) Cap() int { return len(b.data) }

func (b *Buffer[T]) At(i int) T       { return b.data[i] }
func (b *Buffer[T]) SetAt(i int, v T) { b.data[i] = v }

// Live returns the live elements. The returned slice aliases the buffer and is invalidated by the
// next Grow.
func (b *Buffer[T]) Live() []T { return b.data[:b.size] }

// SetLen sets the logical length. Slots given up by shrinking are zeroed so they don't hold
// references.
func (b *Buffer[T]) SetLen(n int) {
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("xbuf: length %d out of range for capacity %d", n, len(b.data)))
	}
	var zero T
	for i := n; i < b.size; i++ {
		b.data[i] = zero
	}
	b.size = n
}

// Grow makes sure the buffer has room for at least need elements. Capacity doubles, or becomes
// exactly need if doubling isn't enough. Capacity never decreases.
func (b *Buffer[T]) Grow(need int) {
	if need <= len(b.data) {
		return
	}
	capacity := len(b.data) * 2
	if capacity < need {
		capacity = need
	}
	data := make([]T, capacity)
	copy(data, b.data[:b.size])
	b.data = data
}

// ShiftRight moves the elements at [start, end] to [start+amount, end+amount]. end < start is an
// empty run.
func (b *Buffer[T]) ShiftRight(start, end, amount int) {
	if end < start || amount == 0 {
		return
	}
	if start < 0 || end+amount >= len(b.data) {
		panic(fmt.Sprintf("xbuf: shift [%d, %d] right by %d overruns capacity %d",
			start, end, amount, len(b.data)))
	}
	// copy is a memmove, so the overlapping destination is safe.
	copy(b.data[start+amount:end+amount+1], b.data[start:end+1])
}

// ShiftLeft moves the elements at [start, end] to [start-amount, end-amount]. end < start is an
// empty run.
func (b *Buffer[T]) ShiftLeft(start, end, amount int) {
	if end < start || amount == 0 {
		return
	}
	if start-amount < 0 || end >= len(b.data) {
		panic(fmt.Sprintf("xbuf: shift [%d, %d] left by %d underruns the buffer", start, end, amount))
	}
	copy(b.data[start-amount:end-amount+1], b.data[start:end+1])
}
