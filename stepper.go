package astar

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Outcome is the result of one Calculate call.
type Outcome int

const (
	InProgress Outcome = iota
	Arrived
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Arrived:
		return "arrived"
	case Exhausted:
		return "exhausted"
	default:
		return "in-progress"
	}
}

// Step is what a single Calculate call reports.
type Step[NodeType comparable] struct {
	Outcome Outcome
	// Current is the expanded identity, or the start identity on Arrived.
	// It is the zero value on Exhausted.
	Current NodeType
	// StepIndex counts the expansions of the current search.
	StepIndex int
	// Arrival is set only when Outcome is Arrived.
	Arrival *Arrival[NodeType]
}

// Arrival proves that a search reached its destination. Only Calculate
// creates one, and it is only valid until the engine's next Startup.
type Arrival[NodeType comparable] struct {
	engine     *Engine[NodeType]
	generation uint64
	record     *SearchRecord[NodeType]
}

// Cost is the accumulated cost of the arrived path.
func (a *Arrival[NodeType]) Cost() float64 { return a.record.CostFromStart }

// Stats describes the current search of an engine.
type Stats struct {
	Expanded     int
	Visited      int
	Open         int
	PoolCapacity int
	PoolGrowths  int
}

// Engine is a stepwise A* search over a Graph.
//
// The search runs from goal to start internally: the origin record belongs
// to the goal and the destination is the start. Walking parent links from
// the arrived record therefore yields the path already ordered from start
// towards goal.
//
// An Engine owns its record pool and is not safe for concurrent use.
// Separate engines may run in parallel.
type Engine[NodeType comparable] struct {
	graph  Graph[NodeType]
	logger *log.Logger
	hooks  Hooks

	pool     *recordPool[NodeType]
	frontier frontier[NodeType]
	visited  *visitedIndex[NodeType]

	origin      *SearchRecord[NodeType]
	destination Node[NodeType]

	generation uint64
	started    bool
	finished   bool
	expanded   int
	growths    int
}

// New creates an engine with its own pre-sized record pool.
func New[NodeType comparable](options ...Option) *Engine[NodeType] {
	return newEngine[NodeType](buildOptions(options))
}

func newEngine[NodeType comparable](opts Options) *Engine[NodeType] {
	e := &Engine[NodeType]{
		logger:   opts.Logger,
		hooks:    opts.Hooks,
		pool:     newRecordPool[NodeType](opts.PoolCapacity),
		frontier: newFrontier[NodeType](opts.Frontier, opts.PoolCapacity),
		visited:  newVisitedIndex[NodeType](opts.PoolCapacity),
	}
	e.pool.onGrow = e.poolGrew
	return e
}

// Configure sets the graph for subsequent searches.
func (e *Engine[NodeType]) Configure(graph Graph[NodeType]) {
	e.graph = graph
	e.started = false
}

// Startup discards any previous search and starts a new one.
func (e *Engine[NodeType]) Startup(start, goal NodeType) error {
	e.generation++
	e.started = false
	e.finished = false
	e.expanded = 0
	e.growths = 0
	e.origin = nil
	e.destination = nil
	e.pool.Reset()
	e.frontier.Reset()
	e.visited.Reset()

	if e.graph == nil {
		return ErrNoGraph
	}
	startNode, err := e.graph.Lookup(start)
	if err != nil {
		return fmt.Errorf("%w: start %v: %w", ErrNodeLookup, start, err)
	}
	goalNode, err := e.graph.Lookup(goal)
	if err != nil {
		return fmt.Errorf("%w: goal %v: %w", ErrNodeLookup, goal, err)
	}

	e.destination = startNode
	e.origin = e.pool.Allocate(goalNode)
	e.origin.reset(nil, 0, e.graph.HeuristicCost(e.destination, goalNode), Open)
	e.visited.Add(e.origin)
	e.frontier.Insert(e.origin)
	e.started = true

	e.logger.Debug("search started", "start", start, "goal", goal, "pool", e.pool.Cap())
	return nil
}

// Calculate performs at most one expansion.
//
// Exhausted means no path exists. Arrived leaves the arrived record at the
// head of the frontier, so calling Calculate again keeps returning Arrived.
func (e *Engine[NodeType]) Calculate() (Step[NodeType], error) {
	if !e.started {
		return Step[NodeType]{}, ErrNotStarted
	}

	current := e.frontier.Peek()
	if current == nil {
		e.finish(Exhausted)
		return Step[NodeType]{Outcome: Exhausted, StepIndex: e.expanded}, nil
	}
	if current.ID == e.destination.ID() {
		e.finish(Arrived)
		return Step[NodeType]{
			Outcome:   Arrived,
			Current:   current.ID,
			StepIndex: e.expanded,
			Arrival:   &Arrival[NodeType]{engine: e, generation: e.generation, record: current},
		}, nil
	}

	e.frontier.RemoveFirst()
	current.Status = Closed
	e.expanded++

	for _, neighbor := range current.Node.Neighbors() {
		if e.graph.IsBlocked(current.Node, neighbor) {
			continue
		}
		costFromStart := e.graph.TransitionCost(current.Node, neighbor, current.CostFromStart)
		costToGoal := e.graph.HeuristicCost(e.destination, neighbor)

		record := e.visited.Get(neighbor.ID())
		switch {
		case record == nil:
			record = e.pool.Allocate(neighbor)
			record.reset(current, costFromStart, costToGoal, Open)
			e.visited.Add(record)
			e.frontier.Insert(record)
		case costFromStart >= record.CostFromStart:
			// not an improvement
		case record.Status == Open:
			e.frontier.Remove(record)
			record.reset(current, costFromStart, costToGoal, Open)
			e.frontier.Insert(record)
		default:
			// Closed, but reachable more cheaply: reopen.
			record.reset(current, costFromStart, costToGoal, Open)
			e.frontier.Insert(record)
		}
	}

	return Step[NodeType]{Outcome: InProgress, Current: current.ID, StepIndex: e.expanded}, nil
}

// Advance calls Calculate up to maxSteps times and stops early on a terminal outcome.
// It lets a host cap the work done per scheduling quantum.
func (e *Engine[NodeType]) Advance(maxSteps int) (Step[NodeType], error) {
	var step Step[NodeType]
	for i := 0; i < maxSteps; i++ {
		var err error
		step, err = e.Calculate()
		if err != nil {
			return step, err
		}
		if step.Outcome != InProgress {
			break
		}
	}
	return step, nil
}

// Routing returns the path of an arrived search, excluding the start identity
// and ending with the goal identity. See PathWithStart for an inclusive path.
func (e *Engine[NodeType]) Routing(arrival *Arrival[NodeType]) ([]NodeType, error) {
	if arrival == nil || arrival.engine != e || arrival.generation != e.generation {
		return nil, ErrStaleArrival
	}
	path := make([]NodeType, 0, 16)
	for record := arrival.record.Parent; record != nil; record = record.Parent {
		path = append(path, record.ID)
	}
	return path, nil
}

// Run steps the search until it arrives or exhausts its frontier.
// ctx is checked between steps.
func (e *Engine[NodeType]) Run(ctx context.Context) (Result[NodeType], error) {
	for {
		if err := ctx.Err(); err != nil {
			return Result[NodeType]{ExpandedNodes: e.expanded}, err
		}
		step, err := e.Calculate()
		if err != nil {
			return Result[NodeType]{}, err
		}
		if step.Outcome != InProgress {
			return e.Result(step)
		}
	}
}

// Result summarises a step of the current search. An Exhausted step gives an
// empty, non-nil Path; an Arrived step gives the routed path and its cost.
// An InProgress step only carries the expansion count.
func (e *Engine[NodeType]) Result(step Step[NodeType]) (Result[NodeType], error) {
	switch step.Outcome {
	case Exhausted:
		return Result[NodeType]{Path: []NodeType{}, ExpandedNodes: e.expanded}, nil
	case Arrived:
		path, err := e.Routing(step.Arrival)
		if err != nil {
			return Result[NodeType]{}, err
		}
		return Result[NodeType]{
			Path:          path,
			TotalCost:     step.Arrival.Cost(),
			ExpandedNodes: e.expanded,
			Found:         true,
		}, nil
	}
	return Result[NodeType]{ExpandedNodes: e.expanded}, nil
}

// Visited returns a copy of every record of the current search in discovery order.
func (e *Engine[NodeType]) Visited() []RecordInfo[NodeType] {
	return infos(e.visited.Ordered())
}

// Frontier returns a copy of the open list, head first.
func (e *Engine[NodeType]) Frontier() []RecordInfo[NodeType] {
	return infos(e.frontier.Ordered())
}

// Stats reports counters of the current search.
func (e *Engine[NodeType]) Stats() Stats {
	return Stats{
		Expanded:     e.expanded,
		Visited:      e.visited.Len(),
		Open:         e.frontier.Len(),
		PoolCapacity: e.pool.Cap(),
		PoolGrowths:  e.growths,
	}
}

func (e *Engine[NodeType]) finish(outcome Outcome) {
	if e.finished {
		return
	}
	e.finished = true
	stats := e.Stats()
	e.logger.Debug("search finished", "outcome", outcome, "expanded", stats.Expanded, "visited", stats.Visited)
	e.hooks.OnSearchDone(outcome, stats)
}

func (e *Engine[NodeType]) poolGrew(oldCapacity, newCapacity int) {
	e.growths++
	e.logger.Warn("record pool exhausted, growing", "from", oldCapacity, "to", newCapacity)
	e.hooks.OnPoolGrow(oldCapacity, newCapacity)
}

func infos[NodeType comparable](records []*SearchRecord[NodeType]) []RecordInfo[NodeType] {
	out := make([]RecordInfo[NodeType], len(records))
	for i, record := range records {
		out[i] = record.info()
	}
	return out
}
