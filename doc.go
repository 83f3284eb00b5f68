// Package astar provides an incremental A* pathfinding engine over a
// caller-supplied graph.
//
// It exposes three entry points:
//
//   - Engine: drive the search one expansion at a time with Calculate, so a
//     host can spread the work across frames or other scheduling quanta, then
//     call Routing with the Arrival token to get the path.
//   - Search and FindPath: run a search to completion on a fresh engine.
//   - SearchAll: run many independent searches over a bounded set of workers.
//
// Each Engine owns a pre-sized pool of search records that is reused by every
// search it runs, so steady-state searches do not allocate per node. The pool
// grows by doubling when a search needs more records, and reports that through
// Hooks.OnPoolGrow and a warning log line.
//
// The search runs from goal to start internally. Paths returned by Routing and
// FindPath start with the node after start and end with goal.
package astar
