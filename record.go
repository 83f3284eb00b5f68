package astar

// Status is the membership state of a node within one search.
type Status uint8

const (
	// Unvisited is implicit: any identity absent from the visited index.
	Unvisited Status = iota
	Open
	Closed
)

func (s Status) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unvisited"
	}
}

// SearchRecord is the per-node bookkeeping of a search.
// Records live in the engine's record pool and are overwritten by the next search.
type SearchRecord[NodeType comparable] struct {
	ID   NodeType
	Node Node[NodeType]

	// Parent is a back reference into the same pool, nil for the search origin.
	Parent *SearchRecord[NodeType]

	CostFromStart float64
	CostToGoal    float64
	CostTotal     float64
	Status        Status

	// heap frontier bookkeeping
	seq          uint64
	indexInQueue int
}

// reset is the only place costs change, so CostTotal never goes stale.
func (r *SearchRecord[NodeType]) reset(parent *SearchRecord[NodeType], costFromStart, costToGoal float64, status Status) {
	r.Parent = parent
	r.CostFromStart = costFromStart
	r.CostToGoal = costToGoal
	r.CostTotal = costFromStart + costToGoal
	r.Status = status
}

// RecordInfo is a read-only copy of a SearchRecord for tooling.
type RecordInfo[NodeType comparable] struct {
	ID            NodeType
	Parent        NodeType
	HasParent     bool
	CostFromStart float64
	CostToGoal    float64
	CostTotal     float64
	Status        Status
}

func (r *SearchRecord[NodeType]) info() RecordInfo[NodeType] {
	info := RecordInfo[NodeType]{
		ID:            r.ID,
		CostFromStart: r.CostFromStart,
		CostToGoal:    r.CostToGoal,
		CostTotal:     r.CostTotal,
		Status:        r.Status,
	}
	if r.Parent != nil {
		info.Parent = r.Parent.ID
		info.HasParent = true
	}
	return info
}
