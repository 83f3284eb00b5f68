package astar

import (
	"context"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
)

// Node is a vertex of the caller's graph.
type Node[NodeType comparable] interface {
	ID() NodeType
	Neighbors() []Node[NodeType]
}

// Graph is generic over node identity type NodeType.
// NodeType must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	// Lookup resolves an identity. Errors are returned to the caller unchanged.
	Lookup(id NodeType) (Node[NodeType], error)

	// HeuristicCost estimates the cost from candidate to goal.
	// It must be admissible for the returned path to be optimal.
	HeuristicCost(goal, candidate Node[NodeType]) float64

	// TransitionCost returns costSoFar plus the cost of moving from current to neighbor.
	TransitionCost(current, neighbor Node[NodeType], costSoFar float64) float64

	// IsBlocked reports whether the edge is impassable right now.
	// It is asked on every expansion, so obstacles may change between steps.
	IsBlocked(current, neighbor Node[NodeType]) bool
}

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	// Path runs from the node after start through goal; start is not included.
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Query is one start/goal pair for SearchAll.
type Query[NodeType comparable] struct {
	Start NodeType
	Goal  NodeType
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	PoolCapacity    int
	Frontier        FrontierKind
	Logger          *log.Logger
	Hooks           Hooks
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many engines SearchAll runs in parallel.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithPoolCapacity sets the number of records pre-allocated per engine.
func WithPoolCapacity(capacity int) Option {
	return func(options *Options) { options.PoolCapacity = capacity }
}

// WithFrontier selects the open list implementation.
func WithFrontier(kind FrontierKind) Option {
	return func(options *Options) { options.Frontier = kind }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithHooks registers diagnostic hooks. A nil value disables them.
func WithHooks(hooks Hooks) Option {
	return func(options *Options) { options.Hooks = hooks }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		PoolCapacity:    DefaultPoolCapacity,
		Frontier:        FrontierSorted,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = log.New(io.Discard)
	}
	if searchOptions.Hooks == nil {
		searchOptions.Hooks = NoopHooks{}
	}
	if searchOptions.PoolCapacity <= 0 {
		searchOptions.PoolCapacity = DefaultPoolCapacity
	}
	return searchOptions
}

// Search runs a search to completion on a fresh engine.
// A missing path is reported with Found == false and a nil error.
func Search[NodeType comparable](
	ctx context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options ...Option,
) (Result[NodeType], error) {
	engine := New[NodeType](options...)
	engine.Configure(graph)
	if err := engine.Startup(startNode, goalNode); err != nil {
		return Result[NodeType]{}, err
	}
	return engine.Run(ctx)
}

// FindPath returns the path from startNode to goalNode, excluding startNode.
// The path is empty when goalNode is unreachable.
func FindPath[NodeType comparable](
	ctx context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options ...Option,
) ([]NodeType, error) {
	result, err := Search(ctx, graph, startNode, goalNode, options...)
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}

// PathWithStart prepends start to a path returned by Routing or FindPath.
func PathWithStart[NodeType comparable](start NodeType, path []NodeType) []NodeType {
	full := make([]NodeType, 0, len(path)+1)
	full = append(full, start)
	return append(full, path...)
}
