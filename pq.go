package astar

import (
	"container/heap"
	"slices"
)

// PriorityQueue orders records by CostTotal, then by insertion sequence,
// which gives the same order as the sorted frontier.
type PriorityQueue[NodeType comparable] []*SearchRecord[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].CostTotal != queue[j].CostTotal {
		return queue[i].CostTotal < queue[j].CostTotal
	}
	return queue[i].seq < queue[j].seq
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *PriorityQueue[NodeType]) Push(x any) {
	record := x.(*SearchRecord[NodeType])
	record.indexInQueue = len(*queue)
	*queue = append(*queue, record)
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	record := oldQueue[n-1]
	oldQueue[n-1] = nil
	record.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return record
}

type heapFrontier[NodeType comparable] struct {
	queue PriorityQueue[NodeType]
	seq   uint64
}

func newHeapFrontier[NodeType comparable](capacity int) *heapFrontier[NodeType] {
	return &heapFrontier[NodeType]{queue: make(PriorityQueue[NodeType], 0, capacity)}
}

func (f *heapFrontier[NodeType]) Insert(r *SearchRecord[NodeType]) {
	f.seq++
	r.seq = f.seq
	heap.Push(&f.queue, r)
}

func (f *heapFrontier[NodeType]) Peek() *SearchRecord[NodeType] {
	if len(f.queue) == 0 {
		return nil
	}
	return f.queue[0]
}

func (f *heapFrontier[NodeType]) RemoveFirst() *SearchRecord[NodeType] {
	if len(f.queue) == 0 {
		return nil
	}
	return heap.Pop(&f.queue).(*SearchRecord[NodeType])
}

func (f *heapFrontier[NodeType]) Remove(r *SearchRecord[NodeType]) bool {
	i := r.indexInQueue
	if i < 0 || i >= len(f.queue) || f.queue[i] != r {
		return false
	}
	heap.Remove(&f.queue, i)
	return true
}

func (f *heapFrontier[NodeType]) Len() int { return len(f.queue) }

func (f *heapFrontier[NodeType]) Reset() {
	clear(f.queue)
	f.queue = f.queue[:0]
	f.seq = 0
}

func (f *heapFrontier[NodeType]) Ordered() []*SearchRecord[NodeType] {
	out := make([]*SearchRecord[NodeType], len(f.queue))
	copy(out, f.queue)
	slices.SortFunc(out, func(a, b *SearchRecord[NodeType]) int {
		switch {
		case a.CostTotal < b.CostTotal:
			return -1
		case a.CostTotal > b.CostTotal:
			return 1
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return out
}
