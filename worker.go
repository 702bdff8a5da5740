package astar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one start/end pair of a batch.
type Query struct {
	Start Cell
	End   Cell
}

// QueryResult is the outcome of one Query. Err carries per-query failures
// such as ErrNoPath or ErrOutOfBounds.
type QueryResult struct {
	Query  Query
	Result Result
	Err    error
}

// FindPaths runs independent searches over a shared grid, at most
// NumberOfWorkers at a time. Results are in query order. Only cancellation of
// ctx fails the batch; queries not started by then keep a zero QueryResult
// apart from their Query.
func FindPaths(ctx context.Context, grid *Grid, queries []Query, options ...Option) ([]QueryResult, error) {
	searchOptions := applyOptions(options)
	results := make([]QueryResult, len(queries))

	group, groupContext := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		results[i].Query = query
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			result, err := FindPath(grid, query.Start, query.End, options...)
			results[i].Result = result
			results[i].Err = err
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
