package astar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPathsKeepsQueryOrder(t *testing.T) {
	grid := referenceGrid(t)
	queries := []Query{
		{Start: Cell{3, 0}, End: Cell{1, 5}},
		{Start: Cell{3, 0}, End: Cell{0, 0}},
		{Start: Cell{5, 5}, End: Cell{3, 5}},
		{Start: Cell{3, 0}, End: Cell{8, 0}},
		{Start: Cell{4, 2}, End: Cell{4, 2}},
	}

	results, err := FindPaths(context.Background(), grid, queries, WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, result := range results {
		assert.Equal(t, queries[i], result.Query)
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, 7.0, results[0].Result.TotalCost)

	assert.ErrorIs(t, results[1].Err, ErrNoPath)

	require.NoError(t, results[2].Err)
	requireConnected(t, grid, results[2].Result.Path)
	assert.Equal(t, 8.0, results[2].Result.TotalCost)

	assert.ErrorIs(t, results[3].Err, ErrOutOfBounds)

	require.NoError(t, results[4].Err)
	assert.Equal(t, []Cell{{4, 2}}, results[4].Result.Path)
}

func TestFindPathsMatchesSequentialSearch(t *testing.T) {
	grid := mustGrid(t,
		"11111111",
		"10110101",
		"11100111",
		"01111101",
		"11010111",
	)
	var queries []Query
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			queries = append(queries, Query{Start: Cell{0, 0}, End: Cell{x, y}})
		}
	}

	results, err := FindPaths(context.Background(), grid, queries)
	require.NoError(t, err)
	for _, result := range results {
		want, wantErr := FindPath(grid, result.Query.Start, result.Query.End)
		assert.Equal(t, wantErr == nil, result.Err == nil, "query %v", result.Query)
		assert.Equal(t, want, result.Result, "query %v", result.Query)
	}
}

func TestFindPathsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	queries := []Query{{Start: Cell{3, 0}, End: Cell{1, 5}}}
	results, err := FindPaths(ctx, referenceGrid(t), queries)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.Equal(t, queries[0], results[0].Query)
	assert.False(t, results[0].Result.Found)
}
