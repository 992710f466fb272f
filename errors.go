package lists

import (
	"errors"
)

var (
	// ErrOutOfRange is returned when an index argument is outside the bounds allowed for the current
	// size of the list, or when a Cursor is advanced past either end.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidState is returned by Cursor.Set and Cursor.Remove when there is no element to act on:
	// either Next or Previous has not been called, or a Remove or Add has already consumed it.
	ErrInvalidState = errors.New("invalid cursor state")
)
