package astar

import "sync/atomic"

// Hooks receives diagnostic events from an Engine.
// Implementations shared between engines must be safe for concurrent use.
type Hooks interface {
	// OnPoolGrow is called when a search needed more records than the pool held.
	// The search continues; treat it as a signal to raise WithPoolCapacity.
	OnPoolGrow(oldCapacity, newCapacity int)

	// OnSearchDone is called once per search, on its first terminal outcome.
	OnSearchDone(outcome Outcome, stats Stats)
}

// NoopHooks ignores every event.
type NoopHooks struct{}

func (NoopHooks) OnPoolGrow(int, int)         {}
func (NoopHooks) OnSearchDone(Outcome, Stats) {}

// BasicHooks counts events in memory.
type BasicHooks struct {
	PoolGrowths     atomic.Int64
	Searches        atomic.Int64
	Arrivals        atomic.Int64
	Exhaustions     atomic.Int64
	ExpandedNodes   atomic.Int64
	LargestCapacity atomic.Int64
}

// OnPoolGrow implements Hooks.
func (b *BasicHooks) OnPoolGrow(_, newCapacity int) {
	b.PoolGrowths.Add(1)
	for {
		current := b.LargestCapacity.Load()
		if int64(newCapacity) <= current || b.LargestCapacity.CompareAndSwap(current, int64(newCapacity)) {
			return
		}
	}
}

// OnSearchDone implements Hooks.
func (b *BasicHooks) OnSearchDone(outcome Outcome, stats Stats) {
	b.Searches.Add(1)
	b.ExpandedNodes.Add(int64(stats.Expanded))
	switch outcome {
	case Arrived:
		b.Arrivals.Add(1)
	case Exhausted:
		b.Exhaustions.Add(1)
	}
}
