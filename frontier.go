package astar

// FrontierKind selects the open list implementation.
type FrontierKind int

const (
	// FrontierSorted keeps a slice sorted by CostTotal with linear inserts.
	// Best for the small search spaces the engine targets.
	FrontierSorted FrontierKind = iota
	// FrontierHeap is a binary heap with the same ordering contract.
	FrontierHeap
)

func (k FrontierKind) String() string {
	if k == FrontierHeap {
		return "heap"
	}
	return "sorted"
}

// frontier is the open list: ascending CostTotal, ties first-in first-out.
type frontier[NodeType comparable] interface {
	Insert(r *SearchRecord[NodeType])
	Peek() *SearchRecord[NodeType]
	RemoveFirst() *SearchRecord[NodeType]
	Remove(r *SearchRecord[NodeType]) bool
	Len() int
	Reset()
	// Ordered returns the records head first.
	Ordered() []*SearchRecord[NodeType]
}

func newFrontier[NodeType comparable](kind FrontierKind, capacity int) frontier[NodeType] {
	if kind == FrontierHeap {
		return newHeapFrontier[NodeType](capacity)
	}
	return &sortedFrontier[NodeType]{records: make([]*SearchRecord[NodeType], 0, capacity)}
}

type sortedFrontier[NodeType comparable] struct {
	records []*SearchRecord[NodeType]
}

// Insert places r after every record of equal or lower total cost.
func (f *sortedFrontier[NodeType]) Insert(r *SearchRecord[NodeType]) {
	i := 0
	for i < len(f.records) && f.records[i].CostTotal <= r.CostTotal {
		i++
	}
	f.records = append(f.records, nil)
	copy(f.records[i+1:], f.records[i:])
	f.records[i] = r
}

func (f *sortedFrontier[NodeType]) Peek() *SearchRecord[NodeType] {
	if len(f.records) == 0 {
		return nil
	}
	return f.records[0]
}

func (f *sortedFrontier[NodeType]) RemoveFirst() *SearchRecord[NodeType] {
	if len(f.records) == 0 {
		return nil
	}
	r := f.records[0]
	f.removeAt(0)
	return r
}

func (f *sortedFrontier[NodeType]) Remove(r *SearchRecord[NodeType]) bool {
	for i, candidate := range f.records {
		if candidate == r {
			f.removeAt(i)
			return true
		}
	}
	return false
}

func (f *sortedFrontier[NodeType]) removeAt(i int) {
	copy(f.records[i:], f.records[i+1:])
	f.records[len(f.records)-1] = nil
	f.records = f.records[:len(f.records)-1]
}

func (f *sortedFrontier[NodeType]) Len() int { return len(f.records) }

func (f *sortedFrontier[NodeType]) Reset() {
	clear(f.records)
	f.records = f.records[:0]
}

func (f *sortedFrontier[NodeType]) Ordered() []*SearchRecord[NodeType] {
	out := make([]*SearchRecord[NodeType], len(f.records))
	copy(out, f.records)
	return out
}
