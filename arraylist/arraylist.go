// Package arraylist provides a list backed by a contiguous buffer that doubles when full.
package arraylist

import (
	"fmt"
	"strings"

	"github.com/a-peyrard/collections/option"
	"github.com/rs/zerolog"
)

// DefaultInitialCapacity is the capacity of a list built without WithInitialCapacity.
const DefaultInitialCapacity = 10

// minimumGrowth is the capacity a list grows to when it has no slot at all.
const minimumGrowth = 1

type (
	// ArrayList is an index-addressable sequence stored in a contiguous buffer.
	//
	// Appending is amortized O(1): when the buffer is full it is reallocated with
	// twice the number of elements. Inserting or removing at an arbitrary position
	// is O(n) as the tail of the buffer has to be shifted.
	//
	// The zero value is an empty list with no capacity, ready to use.
	// An ArrayList must not be used by several goroutines at the same time.
	ArrayList[T any] struct {
		elements []T
		size     int
		mods     int

		moveCounter       int
		expandCounter     int
		expandMoveCounter int

		logger zerolog.Logger
	}

	Options struct {
		initialCapacity int
		logger          zerolog.Logger
	}
)

// WithInitialCapacity sets the number of slots allocated up front.
func WithInitialCapacity(capacity int) option.Option[Options] {
	return func(opts *Options) {
		opts.initialCapacity = capacity
	}
}

// WithLogger sets the logger used to report buffer expansions, at debug level.
func WithLogger(logger zerolog.Logger) option.Option[Options] {
	return func(opts *Options) {
		opts.logger = logger
	}
}

// New creates an empty list.
// It panics if the initial capacity is negative.
func New[T any](opts ...option.Option[Options]) *ArrayList[T] {
	options := option.Build(&Options{
		initialCapacity: DefaultInitialCapacity,
		logger:          zerolog.Nop(),
	}, opts...)
	if options.initialCapacity < 0 {
		panic(fmt.Sprintf("arraylist: negative initial capacity %d", options.initialCapacity))
	}

	return &ArrayList[T]{
		elements: make([]T, options.initialCapacity),
		logger:   options.logger,
	}
}

// Of creates a list holding the given elements, with a capacity equal to their count.
func Of[T any](elements ...T) *ArrayList[T] {
	buffer := make([]T, len(elements))
	copy(buffer, elements)
	return &ArrayList[T]{
		elements: buffer,
		size:     len(elements),
		logger:   zerolog.Nop(),
	}
}

// Append adds the element at the end of the list.
func (l *ArrayList[T]) Append(element T) {
	l.ensureCapacity()
	l.elements[l.size] = element
	l.size++
	l.mods++
}

// InsertAt inserts the element so that it ends up at the given position, moving
// the elements at [position, Size()) one slot to the right.
// Valid positions are in [0, Size()], Size() being equivalent to Append.
func (l *ArrayList[T]) InsertAt(position int, element T) error {
	if position < 0 || position > l.size {
		return &IndexOutOfRangeError{Op: "insert", Position: position, Size: l.size}
	}

	l.ensureCapacity()
	l.shift(position)
	l.elements[position] = element
	l.size++
	l.mods++
	return nil
}

// RemoveAt removes and returns the element at the given position, moving the
// elements after it one slot to the left.
func (l *ArrayList[T]) RemoveAt(position int) (T, error) {
	if err := l.checkElementIndex("remove", position); err != nil {
		var zero T
		return zero, err
	}

	removed := l.elements[position]
	l.unshift(position)
	l.size--
	l.mods++
	return removed, nil
}

// Get returns the element at the given position.
func (l *ArrayList[T]) Get(position int) (T, error) {
	if err := l.checkElementIndex("get", position); err != nil {
		var zero T
		return zero, err
	}
	return l.elements[position], nil
}

// Set replaces the element at the given position and returns the one it replaced.
func (l *ArrayList[T]) Set(position int, element T) (T, error) {
	if err := l.checkElementIndex("set", position); err != nil {
		var zero T
		return zero, err
	}

	previous := l.elements[position]
	l.elements[position] = element
	return previous, nil
}

// Clear removes all the elements. The capacity is kept.
func (l *ArrayList[T]) Clear() {
	clear(l.elements[:l.size])
	l.size = 0
	l.mods++
}

func (l *ArrayList[T]) Size() int {
	return l.size
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.size == 0
}

// Capacity returns the number of allocated slots, used or not.
func (l *ArrayList[T]) Capacity() int {
	return len(l.elements)
}

// RemainingCapacity returns the number of elements that can be added before the next expansion.
func (l *ArrayList[T]) RemainingCapacity() int {
	return len(l.elements) - l.size
}

// MoveCounter returns how many elements were moved by insertions and removals.
func (l *ArrayList[T]) MoveCounter() int {
	return l.moveCounter
}

// ExpandCounter returns how many times the buffer was reallocated.
func (l *ArrayList[T]) ExpandCounter() int {
	return l.expandCounter
}

// ExpandMoveCounter returns how many elements were copied by reallocations.
func (l *ArrayList[T]) ExpandMoveCounter() int {
	return l.expandMoveCounter
}

// ToSlice returns a copy of the elements, in index order.
func (l *ArrayList[T]) ToSlice() []T {
	result := make([]T, l.size)
	copy(result, l.elements[:l.size])
	return result
}

// String renders the elements as a bracketed, comma-separated listing, e.g. [1, 2, 3].
func (l *ArrayList[T]) String() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(l.elements[i]))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *ArrayList[T]) checkElementIndex(op string, position int) error {
	if position < 0 || position >= l.size {
		return &IndexOutOfRangeError{Op: op, Position: position, Size: l.size}
	}
	return nil
}

// ensureCapacity makes room for one more element.
func (l *ArrayList[T]) ensureCapacity() {
	if l.size < len(l.elements) {
		return
	}

	newCapacity := max(2*l.size, minimumGrowth)
	expanded := make([]T, newCapacity)
	copy(expanded, l.elements[:l.size])

	l.logger.Debug().
		Int("from", len(l.elements)).
		Int("to", newCapacity).
		Int("moved", l.size).
		Msg("expanding buffer")

	l.elements = expanded
	l.expandCounter++
	l.expandMoveCounter += l.size
}

// shift opens a gap at position, the caller guarantees a free slot at the end.
func (l *ArrayList[T]) shift(position int) {
	copy(l.elements[position+1:l.size+1], l.elements[position:l.size])
	l.moveCounter += l.size - position
}

// unshift closes the gap at position and clears the vacated last slot.
func (l *ArrayList[T]) unshift(position int) {
	copy(l.elements[position:l.size-1], l.elements[position+1:l.size])
	l.moveCounter += l.size - 1 - position

	var zero T
	l.elements[l.size-1] = zero
}
