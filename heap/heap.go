// Package heap provides a priority queue whose binary heap is stored in an arraylist.ArrayList.
package heap

import (
	"container/heap"

	"github.com/a-peyrard/collections/arraylist"
	"github.com/a-peyrard/collections/fn"
	"github.com/a-peyrard/collections/option"
)

// innerPriorityQueue is the type that will be used by the heap package from the standard library.
// container/heap only hands it positions in [0, Len()), so the list never reports an out of range error.
type innerPriorityQueue[T any] struct {
	elements   *arraylist.ArrayList[T]
	comparator fn.Comparator[T]
}

// PriorityQueue is a priority queue implementation that uses a heap.
// Elements are popped from the smallest to the greatest according to the comparator.
type PriorityQueue[T any] struct {
	inner *innerPriorityQueue[T]
}

// New creates a new priority queue with the given comparator, the options configure the backing list.
func New[T any](comparator fn.Comparator[T], opts ...option.Option[arraylist.Options]) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		inner: &innerPriorityQueue[T]{
			elements:   arraylist.New[T](opts...),
			comparator: comparator,
		},
	}
}

func (pq *PriorityQueue[T]) Push(elem T) {
	heap.Push(pq.inner, elem)
}

// Pop removes and returns the smallest element, false if the queue is empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if pq.IsEmpty() {
		var zero T
		return zero, false
	}
	return heap.Pop(pq.inner).(T), true
}

// Peek returns the smallest element without removing it, false if the queue is empty.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	head, err := pq.inner.elements.Get(0)
	return head, err == nil
}

func (pq *PriorityQueue[T]) Len() int {
	return pq.inner.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.inner.Len() == 0
}

func (pq *PriorityQueue[T]) IsNotEmpty() bool {
	return pq.inner.Len() > 0
}

func (pq *innerPriorityQueue[T]) Len() int { return pq.elements.Size() }

func (pq *innerPriorityQueue[T]) Less(i, j int) bool {
	a, _ := pq.elements.Get(i)
	b, _ := pq.elements.Get(j)
	return pq.comparator(a, b) == fn.Less
}

func (pq *innerPriorityQueue[T]) Swap(i, j int) {
	a, _ := pq.elements.Get(i)
	b, _ := pq.elements.Set(j, a)
	_, _ = pq.elements.Set(i, b)
}

func (pq *innerPriorityQueue[T]) Push(x any) {
	pq.elements.Append(x.(T))
}

func (pq *innerPriorityQueue[T]) Pop() any {
	item, _ := pq.elements.RemoveAt(pq.elements.Size() - 1)
	return item
}
