package astar

import "errors"

var (
	// ErrNoGraph is returned when a search is started before Configure.
	ErrNoGraph = errors.New("astar: no graph configured")

	// ErrNotStarted is returned when the engine is stepped before a successful Startup.
	ErrNotStarted = errors.New("astar: search not started")

	// ErrNodeLookup wraps a failure of Graph.Lookup.
	ErrNodeLookup = errors.New("astar: node lookup failed")

	// ErrStaleArrival is returned by Routing when the arrival token does not
	// belong to the engine's current search.
	ErrStaleArrival = errors.New("astar: arrival token is stale or foreign")

	// ErrNoPath reports a search that exhausted its frontier.
	// The engine itself signals this with the Exhausted outcome.
	ErrNoPath = errors.New("astar: no path found")
)
