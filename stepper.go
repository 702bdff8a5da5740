package astar

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"

	"github.com/pdrpinto/astar-grid/internal"
)

// search holds the state of one A* run. It is not safe for concurrent use.
type search struct {
	grid      *Grid
	start     Cell
	goal      Cell
	heuristic Heuristic
	logger    *slog.Logger

	frontier     *PriorityQueue[PriorityEntry]
	distance     []float64
	predecessors map[int]int
	visited      []bool

	current  Cell
	expanded int
	stale    int
	done     bool
	found    bool
}

func newSearch(grid *Grid, start, goal Cell, options Options) (*search, error) {
	if grid == nil {
		return nil, errors.Wrap(ErrInvalidGrid, "nil grid")
	}
	if !grid.InBounds(start) {
		return nil, errors.Wrapf(ErrOutOfBounds, "start %v in %dx%d grid", start, grid.width, grid.height)
	}
	if !grid.InBounds(goal) {
		return nil, errors.Wrapf(ErrOutOfBounds, "end %v in %dx%d grid", goal, grid.width, grid.height)
	}

	s := &search{
		grid:         grid,
		start:        start,
		goal:         goal,
		heuristic:    options.Heuristic,
		logger:       options.Logger,
		frontier:     NewPriorityQueueFunc(lessEntry),
		distance:     make([]float64, grid.Len()),
		predecessors: make(map[int]int),
		visited:      make([]bool, grid.Len()),
		current:      start,
	}
	for i := range s.distance {
		s.distance[i] = math.Inf(1)
	}
	s.distance[grid.index(start)] = 0

	s.logger.Debug("finding path", "start", start, "end", goal)
	s.frontier.Insert(PriorityEntry{Priority: s.heuristic(start, goal), Cell: start})
	return s, nil
}

// step pops one frontier entry and relaxes its neighbours. It reports false
// when the popped entry was a stale duplicate of an already visited cell.
func (s *search) step() bool {
	entry, ok := s.frontier.Pop()
	if !ok {
		s.done = true
		s.logger.Debug("frontier exhausted", "expanded", s.expanded)
		return false
	}

	current := entry.Cell
	currentIndex := s.grid.index(current)
	if s.visited[currentIndex] {
		s.stale++
		return false
	}
	s.visited[currentIndex] = true
	s.current = current
	s.expanded++
	s.logger.Debug("visiting", "cell", current, "priority", entry.Priority)

	if current == s.goal {
		s.done = true
		s.found = true
		return true
	}

	neighbors := s.grid.Neighbors(current)
	for _, neighbor := range neighbors {
		neighborIndex := s.grid.index(neighbor)
		if s.visited[neighborIndex] {
			continue
		}
		tentativeCost := s.distance[currentIndex] + 1
		if tentativeCost < s.distance[neighborIndex] {
			s.distance[neighborIndex] = tentativeCost
			s.predecessors[neighborIndex] = currentIndex
			s.frontier.Insert(PriorityEntry{
				Priority: tentativeCost + s.heuristic(neighbor, s.goal),
				Cell:     neighbor,
			})
			s.logger.Debug("relaxed", "cell", neighbor, "from", current, "cost", tentativeCost)
		}
	}
	return true
}

func (s *search) path() ([]Cell, error) {
	indices, ok := internal.ReconstructPath(s.predecessors, s.grid.index(s.goal), s.grid.index(s.start))
	if !ok {
		return nil, errors.Wrapf(ErrNoPath, "from %v to %v (expanded %d nodes)", s.start, s.goal, s.expanded)
	}
	path := make([]Cell, len(indices))
	for i, index := range indices {
		path[i] = s.grid.cell(index)
	}
	return path, nil
}

func (s *search) result() (Result, error) {
	result := Result{
		ExpandedNodes: s.expanded,
		StaleEntries:  s.stale,
	}
	path, err := s.path()
	if err != nil {
		return result, err
	}
	result.Path = path
	result.TotalCost = s.distance[s.grid.index(s.goal)]
	result.Found = true
	return result, nil
}

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current   Cell
	Open      []Cell
	Closed    []Cell
	Done      bool
	Found     bool
	Path      []Cell
	StepIndex int
}

// Stepper advances a search one expansion at a time.
type Stepper struct {
	search    *search
	stepCount int
}

// NewStepper prepares a search from start to goal without expanding anything.
func NewStepper(grid *Grid, start Cell, goal Cell, options ...Option) (*Stepper, error) {
	s, err := newSearch(grid, start, goal, applyOptions(options))
	if err != nil {
		return nil, err
	}
	return &Stepper{search: s}, nil
}

// Step expands the next cell, skipping stale frontier entries, and returns a
// snapshot. Once the search is done every call returns the final snapshot.
func (stepper *Stepper) Step() StepSnapshot {
	s := stepper.search
	if !s.done {
		stepper.stepCount++
		for !s.done && !s.step() {
			// stale entry, keep popping
		}
	}
	snapshot := StepSnapshot{
		Current:   s.current,
		Open:      stepper.open(),
		Closed:    stepper.closed(),
		Done:      s.done,
		Found:     s.found,
		StepIndex: stepper.stepCount,
	}
	if s.found {
		if path, err := s.path(); err == nil {
			snapshot.Path = path
		}
	}
	return snapshot
}

// Result reports the outcome once Step has returned a done snapshot.
func (stepper *Stepper) Result() (Result, error) {
	s := stepper.search
	if !s.done {
		return Result{ExpandedNodes: s.expanded, StaleEntries: s.stale},
			errors.Wrapf(ErrNoPath, "search from %v to %v still running", s.start, s.goal)
	}
	return s.result()
}

func (stepper *Stepper) open() []Cell {
	s := stepper.search
	seen := make(map[Cell]bool, s.frontier.Len())
	open := make([]Cell, 0, s.frontier.Len())
	for entry := range s.frontier.Values() {
		if seen[entry.Cell] || s.visited[s.grid.index(entry.Cell)] {
			continue
		}
		seen[entry.Cell] = true
		open = append(open, entry.Cell)
	}
	return open
}

func (stepper *Stepper) closed() []Cell {
	s := stepper.search
	closed := make([]Cell, 0, s.expanded)
	for index, visited := range s.visited {
		if visited {
			closed = append(closed, s.grid.cell(index))
		}
	}
	return closed
}
