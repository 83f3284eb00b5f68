package astar

// visitedIndex maps every identity discovered in the current search to its record.
// Entries are only added during a search; Reset clears it for the next one.
type visitedIndex[NodeType comparable] struct {
	records map[NodeType]*SearchRecord[NodeType]
	order   []*SearchRecord[NodeType]
}

func newVisitedIndex[NodeType comparable](capacity int) *visitedIndex[NodeType] {
	return &visitedIndex[NodeType]{
		records: make(map[NodeType]*SearchRecord[NodeType], capacity),
		order:   make([]*SearchRecord[NodeType], 0, capacity),
	}
}

// Get returns the record for id, or nil if id is Unvisited.
func (v *visitedIndex[NodeType]) Get(id NodeType) *SearchRecord[NodeType] {
	return v.records[id]
}

func (v *visitedIndex[NodeType]) Add(r *SearchRecord[NodeType]) {
	v.records[r.ID] = r
	v.order = append(v.order, r)
}

func (v *visitedIndex[NodeType]) Len() int { return len(v.order) }

func (v *visitedIndex[NodeType]) Reset() {
	clear(v.records)
	clear(v.order)
	v.order = v.order[:0]
}

// Ordered returns the records in discovery order.
func (v *visitedIndex[NodeType]) Ordered() []*SearchRecord[NodeType] {
	return v.order
}
