package astar

// DefaultPoolCapacity fits a 32x32 grid.
const DefaultPoolCapacity = 1024

// recordPool is an arena of SearchRecords reused across searches.
//
// Storage is kept in chunks so that growing never moves a record that is
// already referenced by the frontier, the visited index or a parent link.
// The whole pool is returned at once with Reset.
type recordPool[NodeType comparable] struct {
	chunks   [][]SearchRecord[NodeType]
	capacity int
	next     int

	// onGrow is called after the pool doubled its capacity.
	onGrow func(oldCapacity, newCapacity int)
}

// newRecordPool pre-allocates capacity records.
func newRecordPool[NodeType comparable](capacity int) *recordPool[NodeType] {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	return &recordPool[NodeType]{
		chunks:   [][]SearchRecord[NodeType]{make([]SearchRecord[NodeType], capacity)},
		capacity: capacity,
	}
}

// Allocate hands out the next free record, bound to node.
// The record's other fields hold stale data until the caller resets it.
func (p *recordPool[NodeType]) Allocate(node Node[NodeType]) *SearchRecord[NodeType] {
	if p.next == p.capacity {
		p.grow()
	}
	idx := p.next
	p.next++

	var record *SearchRecord[NodeType]
	for _, chunk := range p.chunks {
		if idx < len(chunk) {
			record = &chunk[idx]
			break
		}
		idx -= len(chunk)
	}
	record.ID = node.ID()
	record.Node = node
	record.Parent = nil
	return record
}

func (p *recordPool[NodeType]) grow() {
	old := p.capacity
	p.chunks = append(p.chunks, make([]SearchRecord[NodeType], old))
	p.capacity = old * 2
	if p.onGrow != nil {
		p.onGrow(old, p.capacity)
	}
}

// Reset returns every record to the pool. Storage is kept.
func (p *recordPool[NodeType]) Reset() { p.next = 0 }

// Len is the number of records handed out since the last Reset.
func (p *recordPool[NodeType]) Len() int { return p.next }

// Cap is the number of records the pool can hand out without growing.
func (p *recordPool[NodeType]) Cap() int { return p.capacity }
