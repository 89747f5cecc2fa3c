package arraylist

import (
	"fmt"
	"iter"
)

// Iterator is a forward cursor over an ArrayList.
//
// It is invalidated by any structural modification of the list (append, insert,
// remove, clear) made after its creation or its last Reset. Replacing an element
// with Set does not invalidate it.
type Iterator[T any] struct {
	list         *ArrayList[T]
	cursor       int
	expectedMods int
}

// Iterator returns a cursor positioned before the first element.
func (l *ArrayList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		list:         l,
		expectedMods: l.mods,
	}
}

// Reset rewinds the iterator to the first element and makes it valid again.
func (it *Iterator[T]) Reset() {
	it.cursor = 0
	it.expectedMods = it.list.mods
}

func (it *Iterator[T]) HasNext() bool {
	return it.cursor < it.list.size
}

// Next returns the element under the cursor and advances it.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.expectedMods != it.list.mods {
		return zero, ErrConcurrentModification
	}
	if it.cursor >= it.list.size {
		return zero, ErrNoMoreElements
	}

	element := it.list.elements[it.cursor]
	it.cursor++
	return element, nil
}

// All returns a sequence of (position, element) pairs in index order.
//
// The sequence can be ranged over any number of times. It panics if the list is
// structurally modified while ranging.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		expectedMods := l.mods
		for i := 0; i < l.size; i++ {
			if !yield(i, l.elements[i]) {
				return
			}
			if l.mods != expectedMods {
				panic(fmt.Errorf("arraylist: ranging at position %d: %w", i, ErrConcurrentModification))
			}
		}
	}
}

// Values returns a sequence of the elements in index order, with the same rules as All.
func (l *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, element := range l.All() {
			if !yield(element) {
				return
			}
		}
	}
}
