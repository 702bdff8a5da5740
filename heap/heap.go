// Package heap provides an array-backed binary heap ordered by a
// caller-supplied predicate.
package heap

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Less reports whether a should surface before b.
// It must be irreflexive and transitive; the heap does not check.
type Less[T any] func(a, b T) bool

// Ascending orders smaller values first (min-heap).
func Ascending[T constraints.Ordered](a, b T) bool { return a < b }

// Descending orders larger values first (max-heap).
func Descending[T constraints.Ordered](a, b T) bool { return a > b }

// BinaryHeap is a complete binary tree stored in a slice: the children of
// node i live at 2i+1 and 2i+2, its parent at (i-1)/2.
type BinaryHeap[T any] struct {
	values []T
	less   Less[T]
}

// New returns an empty heap ordered by less.
func New[T any](less Less[T]) *BinaryHeap[T] {
	return &BinaryHeap[T]{less: less}
}

// NewOrdered returns an empty min-heap over an ordered type.
func NewOrdered[T constraints.Ordered]() *BinaryHeap[T] {
	return New(Ascending[T])
}

func (h *BinaryHeap[T]) Len() int {
	return len(h.values)
}

func (h *BinaryHeap[T]) IsEmpty() bool {
	return len(h.values) == 0
}

// SetLess replaces the ordering predicate. Elements already in the heap are
// not reordered, so it should be called before the first Push.
func (h *BinaryHeap[T]) SetLess(less Less[T]) {
	h.less = less
}

// Push adds value and sifts it up towards the root.
func (h *BinaryHeap[T]) Push(value T) {
	h.values = append(h.values, value)
	h.up(len(h.values) - 1)
}

// Pop removes and returns the top element. It returns false on an empty heap.
func (h *BinaryHeap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.values)
	switch n {
	case 0:
		return zero, false
	case 1:
		top := h.values[0]
		h.values[0] = zero
		h.values = h.values[:0]
		return top, true
	}

	top := h.values[0]
	h.values[0] = h.values[n-1]
	h.values[n-1] = zero
	h.values = h.values[:n-1]
	h.down(0)
	return top, true
}

// Peek returns the top element without removing it.
func (h *BinaryHeap[T]) Peek() (T, bool) {
	if len(h.values) == 0 {
		var zero T
		return zero, false
	}
	return h.values[0], true
}

// Values yields the elements in array order, which is not sorted order.
func (h *BinaryHeap[T]) Values() iter.Seq[T] {
	return slices.Values(h.values)
}

func (h *BinaryHeap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.values[j], h.values[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *BinaryHeap[T]) down(i int) {
	n := len(h.values)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		// a node with only a left child is still compared against it
		best := left
		if right := left + 1; right < n && h.less(h.values[right], h.values[left]) {
			best = right
		}
		if h.less(h.values[i], h.values[best]) {
			break
		}
		h.swap(i, best)
		i = best
	}
}

func (h *BinaryHeap[T]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}
