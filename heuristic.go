package astar

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from Cell, to Cell) float64

// Manhattan is |dx| + |dy|, admissible for unit-cost 4-way movement.
func Manhattan(from, to Cell) float64 {
	return float64(abs(to.X-from.X) + abs(to.Y-from.Y))
}

// SignedManhattan is |dy| + dx with the x difference left signed. It
// underestimates (possibly below zero) when the goal lies to the left, so
// searches may expand more cells; it never overestimates.
func SignedManhattan(from, to Cell) float64 {
	return float64(abs(to.Y-from.Y) + (to.X - from.X))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
