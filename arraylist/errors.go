package arraylist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every error returned for an invalid position.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrConcurrentModification is reported when a list is structurally modified while being iterated.
	ErrConcurrentModification = errors.New("list structurally modified during iteration")

	// ErrNoMoreElements is returned by Iterator.Next once the iterator is exhausted.
	ErrNoMoreElements = errors.New("no more elements")
)

// IndexOutOfRangeError describes a position rejected by one of the list operations.
type IndexOutOfRangeError struct {
	Op       string
	Position int
	Size     int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s at position %d: %s for size %d", e.Op, e.Position, ErrIndexOutOfRange, e.Size)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
