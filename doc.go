// Package astar finds least-cost paths on walkability grids.
//
// It exposes three entry points:
//
//   - FindPath: run the search to completion and get a Result.
//   - Stepper: advance the search one expansion at a time to drive UIs or debugging tools.
//   - FindPaths: run many independent searches over one shared grid on a worker pool.
//
// The frontier is a PriorityQueue backed by the binary heap in package heap.
// Each individual search is single-threaded and owns its own state; a Grid is
// never mutated after construction and may be shared between searches.
package astar
