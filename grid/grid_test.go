package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(t *testing.T, g *Grid, p Point) *Cell {
	t.Helper()
	n, err := g.Lookup(g.ID(p))
	require.NoError(t, err)
	return n.(*Cell)
}

func neighborIDs(c *Cell) []int {
	var ids []int
	for _, n := range c.Neighbors() {
		ids = append(ids, n.ID())
	}
	return ids
}

func TestNewNeighbors(t *testing.T) {
	g := New(3, 3)
	assert.Equal(t, []int{5, 3, 7, 1}, neighborIDs(node(t, g, Point{1, 1})))
	assert.Equal(t, []int{1, 3}, neighborIDs(node(t, g, Point{0, 0})))

	d := New(3, 3, WithDiagonal())
	assert.Len(t, node(t, d, Point{1, 1}).Neighbors(), 8)
	assert.Equal(t, []int{1, 3, 4}, neighborIDs(node(t, d, Point{0, 0})))
}

func TestLookupOutOfBounds(t *testing.T) {
	g := New(2, 2)
	_, err := g.Lookup(4)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.Lookup(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestHeuristicCost(t *testing.T) {
	g := New(5, 5)
	assert.Equal(t, 7.0, g.HeuristicCost(node(t, g, Point{0, 0}), node(t, g, Point{3, 4})))

	d := New(5, 5, WithDiagonal())
	got := d.HeuristicCost(node(t, d, Point{0, 0}), node(t, d, Point{3, 4}))
	assert.InDelta(t, 1+3*math.Sqrt2, got, 1e-12)
}

func TestTransitionCost(t *testing.T) {
	g := New(3, 3, WithDiagonal())
	g.SetWeight(Point{1, 0}, 3)

	a, b, c := node(t, g, Point{0, 0}), node(t, g, Point{1, 0}), node(t, g, Point{1, 1})
	assert.Equal(t, 12.0, g.TransitionCost(a, b, 10))
	assert.Equal(t, g.TransitionCost(a, b, 0), g.TransitionCost(b, a, 0))
	assert.InDelta(t, math.Sqrt2, g.TransitionCost(a, c, 0), 1e-12)

	g.SetWeight(Point{2, 2}, 0.1)
	assert.Equal(t, 1.0, g.Weight(Point{2, 2}))
}

func TestIsBlocked(t *testing.T) {
	g := New(3, 3, WithDiagonal())
	a, b, c := node(t, g, Point{0, 0}), node(t, g, Point{1, 0}), node(t, g, Point{1, 1})

	assert.False(t, g.IsBlocked(a, c))

	g.SetWall(Point{0, 1}, true)
	assert.True(t, g.IsBlocked(a, c), "diagonal may not cut a wall corner")
	assert.False(t, g.IsBlocked(a, b))

	g.SetWall(Point{1, 0}, true)
	assert.True(t, g.IsBlocked(a, b))
	assert.True(t, g.IsBlocked(b, a))
	g.SetWall(Point{1, 0}, false)
	g.SetWall(Point{0, 1}, false)

	g.BlockEdge(Point{1, 0}, Point{0, 0})
	assert.True(t, g.IsBlocked(a, b))
	assert.True(t, g.IsBlocked(b, a))
	g.UnblockEdge(Point{0, 0}, Point{1, 0})
	assert.False(t, g.IsBlocked(a, b))
}

func TestPathCost(t *testing.T) {
	g := New(3, 1)
	g.SetWeight(Point{1, 0}, 3)
	assert.Equal(t, 4.0, g.PathCost([]int{0, 1, 2}))
	assert.Equal(t, 0.0, g.PathCost([]int{0}))
}
