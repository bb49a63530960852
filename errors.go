package ordskiplist

import "errors"

var (
	// ErrNotFound is returned by Remove and Index when no element compares
	// equal to the requested value.
	ErrNotFound = errors.New("ordskiplist: value not found")

	// ErrOutOfRange is returned when a position is outside [-Length(), Length()).
	ErrOutOfRange = errors.New("ordskiplist: index out of range")

	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("ordskiplist: list is empty")
)
