// Package grid is a rectangular map that satisfies astar.Graph.
//
// Cells are identified by y*Width + x. Walls, per-cell weights and blocked
// edges can change between search steps; the engine asks IsBlocked on every
// expansion. A Grid is not safe for concurrent mutation, but any number of
// searches may read it at once.
package grid

import (
	"errors"
	"fmt"
	"math"

	astar "github.com/pdrpinto/astarstep"
)

// ErrOutOfBounds is returned by Lookup for identities outside the grid.
var ErrOutOfBounds = errors.New("grid: cell out of bounds")

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

type edge struct{ from, to int }

// Cell is a grid node.
type Cell struct {
	id        int
	point     Point
	neighbors []astar.Node[int]
}

func (c *Cell) ID() int                      { return c.id }
func (c *Cell) Neighbors() []astar.Node[int] { return c.neighbors }
func (c *Cell) Point() Point                 { return c.point }

// Grid is a 4- or 8-connected grid graph.
type Grid struct {
	Width, Height int
	Diagonal      bool

	cells   []*Cell
	walls   []bool
	weights []float64
	blocked map[edge]struct{}
}

// Option configures a Grid.
type Option func(*Grid)

// WithDiagonal enables 8-connected movement with the octile heuristic.
// Diagonal moves may not cut wall corners.
func WithDiagonal() Option {
	return func(g *Grid) { g.Diagonal = true }
}

var (
	orthogonal = []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = []Point{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// New creates an open grid. Every cell has weight 1.
func New(width, height int, opts ...Option) *Grid {
	g := &Grid{
		Width:   width,
		Height:  height,
		cells:   make([]*Cell, width*height),
		walls:   make([]bool, width*height),
		weights: make([]float64, width*height),
		blocked: make(map[edge]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := g.ID(Point{x, y})
			g.cells[id] = &Cell{id: id, point: Point{x, y}}
			g.weights[id] = 1
		}
	}

	dirs := orthogonal
	if g.Diagonal {
		dirs = append(append([]Point{}, orthogonal...), diagonal...)
	}
	for _, c := range g.cells {
		c.neighbors = make([]astar.Node[int], 0, len(dirs))
		for _, d := range dirs {
			np := Point{c.point.X + d.X, c.point.Y + d.Y}
			if g.In(np) {
				c.neighbors = append(c.neighbors, g.cells[g.ID(np)])
			}
		}
	}
	return g
}

// ID returns the identity of p. p must be inside the grid.
func (g *Grid) ID(p Point) int { return p.Y*g.Width + p.X }

// Point returns the coordinate of id.
func (g *Grid) Point(id int) Point { return Point{id % g.Width, id / g.Width} }

// In reports whether p is inside the grid.
func (g *Grid) In(p Point) bool { return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height }

// Len is the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// SetWall marks or clears a wall. Walls block every edge touching them.
func (g *Grid) SetWall(p Point, wall bool) {
	if g.In(p) {
		g.walls[g.ID(p)] = wall
	}
}

// IsWall reports whether p is a wall. Points outside the grid are walls.
func (g *Grid) IsWall(p Point) bool {
	return !g.In(p) || g.walls[g.ID(p)]
}

// SetWeight sets the cost multiplier of p. Weights below 1 are raised to 1
// so the distance heuristics stay admissible.
func (g *Grid) SetWeight(p Point, weight float64) {
	if g.In(p) {
		g.weights[g.ID(p)] = math.Max(weight, 1)
	}
}

// Weight returns the cost multiplier of p.
func (g *Grid) Weight(p Point) float64 {
	if !g.In(p) {
		return math.Inf(1)
	}
	return g.weights[g.ID(p)]
}

// BlockEdge makes the edge between a and b impassable in both directions.
func (g *Grid) BlockEdge(a, b Point) {
	g.blocked[g.edgeKey(a, b)] = struct{}{}
}

// UnblockEdge reverts BlockEdge.
func (g *Grid) UnblockEdge(a, b Point) {
	delete(g.blocked, g.edgeKey(a, b))
}

func (g *Grid) edgeKey(a, b Point) edge {
	ia, ib := g.ID(a), g.ID(b)
	if ia > ib {
		ia, ib = ib, ia
	}
	return edge{ia, ib}
}

// Lookup implements astar.Graph.
func (g *Grid) Lookup(id int) (astar.Node[int], error) {
	if id < 0 || id >= len(g.cells) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfBounds, id)
	}
	return g.cells[id], nil
}

// HeuristicCost implements astar.Graph with the Manhattan distance, or the
// octile distance when diagonal movement is enabled.
func (g *Grid) HeuristicCost(goal, candidate astar.Node[int]) float64 {
	a, b := g.Point(goal.ID()), g.Point(candidate.ID())
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if !g.Diagonal {
		return dx + dy
	}
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// TransitionCost implements astar.Graph. The edge cost is the step length
// times the mean weight of both cells, so it is the same in both directions.
func (g *Grid) TransitionCost(current, neighbor astar.Node[int], costSoFar float64) float64 {
	a, b := current.ID(), neighbor.ID()
	step := 1.0
	if pa, pb := g.Point(a), g.Point(b); pa.X != pb.X && pa.Y != pb.Y {
		step = math.Sqrt2
	}
	return costSoFar + step*(g.weights[a]+g.weights[b])/2
}

// IsBlocked implements astar.Graph.
func (g *Grid) IsBlocked(current, neighbor astar.Node[int]) bool {
	a, b := current.ID(), neighbor.ID()
	if g.walls[a] || g.walls[b] {
		return true
	}
	pa, pb := g.Point(a), g.Point(b)
	if pa.X != pb.X && pa.Y != pb.Y {
		if g.IsWall(Point{pb.X, pa.Y}) || g.IsWall(Point{pa.X, pb.Y}) {
			return true
		}
	}
	if len(g.blocked) == 0 {
		return false
	}
	_, ok := g.blocked[g.edgeKey(pa, pb)]
	return ok
}

// PathCost sums TransitionCost along ids, which must be adjacent in order.
func (g *Grid) PathCost(ids []int) float64 {
	cost := 0.0
	for i := 1; i < len(ids); i++ {
		cost = g.TransitionCost(g.cells[ids[i-1]], g.cells[ids[i]], cost)
	}
	return cost
}

var _ astar.Graph[int] = (*Grid)(nil)
