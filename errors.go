package astar

import "github.com/pkg/errors"

var (
	// ErrNoPath is returned when the goal cannot be reached from the start.
	ErrNoPath = errors.New("no path found")
	// ErrOutOfBounds is returned for coordinates or indices outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidGrid is returned when markers do not match the grid dimensions.
	ErrInvalidGrid = errors.New("invalid grid")
)
