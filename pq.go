package astar

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/pdrpinto/astar-grid/heap"
)

// PriorityQueue pops items in the order of its comparator: with the default
// comparator that is the smallest item first.
type PriorityQueue[T any] struct {
	backing *heap.BinaryHeap[T]
}

// NewPriorityQueue returns a queue that pops the smallest value first.
func NewPriorityQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return &PriorityQueue[T]{backing: heap.NewOrdered[T]()}
}

// NewPriorityQueueFunc returns a queue ordered by less.
func NewPriorityQueueFunc[T any](less heap.Less[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{backing: heap.New(less)}
}

func (queue *PriorityQueue[T]) Insert(item T)   { queue.backing.Push(item) }
func (queue *PriorityQueue[T]) Pop() (T, bool)  { return queue.backing.Pop() }
func (queue *PriorityQueue[T]) Peek() (T, bool) { return queue.backing.Peek() }
func (queue *PriorityQueue[T]) Len() int        { return queue.backing.Len() }
func (queue *PriorityQueue[T]) IsEmpty() bool   { return queue.backing.IsEmpty() }

// Values yields the queued items in no particular order.
func (queue *PriorityQueue[T]) Values() iter.Seq[T] { return queue.backing.Values() }

// SetComparator replaces the ordering. Queued items are not reordered, so
// pops stay inconsistent until the queue is drained; set it before the first
// Insert.
func (queue *PriorityQueue[T]) SetComparator(less heap.Less[T]) {
	queue.backing.SetLess(less)
}

// PriorityEntry is a frontier item: a cell scored by g-cost plus heuristic.
type PriorityEntry struct {
	Priority float64
	Cell     Cell
}

// lessEntry orders by priority, then by X, then by Y so ties pop deterministically.
func lessEntry(a, b PriorityEntry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Cell.X != b.Cell.X {
		return a.Cell.X < b.Cell.X
	}
	return a.Cell.Y < b.Cell.Y
}
