package internal

// ReconstructPath walks predecessor links from goal back to start and returns
// the indices in start-to-goal order. It reports false when the chain breaks
// before reaching start.
func ReconstructPath(predecessors map[int]int, goal int, start int) ([]int, bool) {
	path := []int{goal}
	for current := goal; current != start; {
		previous, exists := predecessors[current]
		if !exists {
			return nil, false
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
