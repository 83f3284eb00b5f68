package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SearchAll runs independent queries in parallel and returns their results in
// query order. Each worker owns its own Engine, so pools are never shared;
// graph, however, is read by all workers at once and must allow that.
func SearchAll[NodeType comparable](
	ctx context.Context,
	graph Graph[NodeType],
	queries []Query[NodeType],
	options ...Option,
) ([]Result[NodeType], error) {
	results := make([]Result[NodeType], len(queries))
	if len(queries) == 0 {
		return results, nil
	}

	opts := buildOptions(options)
	workers := min(max(opts.NumberOfWorkers, 1), len(queries))

	engines := make(chan *Engine[NodeType], workers)
	for i := 0; i < workers; i++ {
		engine := newEngine[NodeType](opts)
		engine.Configure(graph)
		engines <- engine
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, query := range queries {
		group.Go(func() error {
			engine := <-engines
			defer func() { engines <- engine }()

			if err := engine.Startup(query.Start, query.Goal); err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			result, err := engine.Run(groupCtx)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
