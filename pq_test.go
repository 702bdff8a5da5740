package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/astar-grid/heap"
)

type task struct {
	priority int
	name     string
}

func lessTask(a, b task) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.name < b.name
}

func TestPriorityQueueMorningRoutine(t *testing.T) {
	queue := NewPriorityQueueFunc(lessTask)
	queue.Insert(task{500, "Leave home"})
	queue.Insert(task{2, "Brush teeth"})
	queue.Insert(task{32, "Get dressed"})
	queue.Insert(task{2, "Shower"})
	queue.Insert(task{1, "Have breakfast"})
	queue.Insert(task{0, "Wake up"})

	var names []string
	for !queue.IsEmpty() {
		next, ok := queue.Pop()
		require.True(t, ok)
		names = append(names, next.name)
	}
	assert.Equal(t, []string{"Wake up", "Have breakfast", "Brush teeth", "Shower", "Get dressed", "Leave home"}, names)
}

func TestPriorityQueueDefaultIsMin(t *testing.T) {
	queue := NewPriorityQueue[int]()
	for _, v := range []int{7, 3, 9, 1} {
		queue.Insert(v)
	}
	top, ok := queue.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, top)
	assert.Equal(t, 4, queue.Len())

	v, ok := queue.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPriorityQueueSetComparatorBeforeInsert(t *testing.T) {
	queue := NewPriorityQueue[int]()
	queue.SetComparator(heap.Descending[int])
	for _, v := range []int{7, 3, 9, 1} {
		queue.Insert(v)
	}
	var out []int
	for v, ok := queue.Pop(); ok; v, ok = queue.Pop() {
		out = append(out, v)
	}
	assert.Equal(t, []int{9, 7, 3, 1}, out)
}

func TestPriorityQueuePopEmpty(t *testing.T) {
	queue := NewPriorityQueue[float64]()
	_, ok := queue.Pop()
	assert.False(t, ok)
	assert.True(t, queue.IsEmpty())
}

func TestLessEntryBreaksTiesByCell(t *testing.T) {
	assert.True(t, lessEntry(PriorityEntry{1, Cell{5, 5}}, PriorityEntry{2, Cell{0, 0}}))
	assert.True(t, lessEntry(PriorityEntry{2, Cell{0, 6}}, PriorityEntry{2, Cell{1, 0}}))
	assert.True(t, lessEntry(PriorityEntry{2, Cell{1, 0}}, PriorityEntry{2, Cell{1, 1}}))
	assert.False(t, lessEntry(PriorityEntry{2, Cell{1, 1}}, PriorityEntry{2, Cell{1, 1}}))
}
