package astar

import (
	"log/slog"
	"runtime"
)

// Result contains the outcome of a search.
type Result struct {
	Path          []Cell
	TotalCost     float64
	ExpandedNodes int
	StaleEntries  int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Heuristic       Heuristic
	Logger          *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches FindPaths runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithHeuristic replaces the default Manhattan estimate. A heuristic that
// overestimates still yields a connected path, but not necessarily a shortest one.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithLogger sets the logger receiving per-expansion debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Heuristic:       Manhattan,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = Manhattan
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// FindPath runs A* from start to end and returns the path with both
// endpoints included. It fails with ErrOutOfBounds when an endpoint is off
// the grid and with ErrNoPath when end cannot be reached.
func FindPath(grid *Grid, start Cell, end Cell, options ...Option) (Result, error) {
	s, err := newSearch(grid, start, end, applyOptions(options))
	if err != nil {
		return Result{}, err
	}
	for !s.done {
		s.step()
	}
	return s.result()
}

// FindPathOnMap parses a row-major marker string and searches it.
func FindPathOnMap(markers string, width, height int, start, end Cell, options ...Option) ([]Cell, error) {
	grid, err := NewGrid(markers, width, height)
	if err != nil {
		return nil, err
	}
	result, err := FindPath(grid, start, end, options...)
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}
