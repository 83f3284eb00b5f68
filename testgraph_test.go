package astar

import (
	"errors"
	"fmt"
)

var errUnknownNode = errors.New("unknown node")

type testNode struct {
	id        int
	neighbors []Node[int]
}

func (n *testNode) ID() int                { return n.id }
func (n *testNode) Neighbors() []Node[int] { return n.neighbors }

// testGraph is an undirected graph with explicit edge costs and per-node heuristic values.
type testGraph struct {
	nodes   map[int]*testNode
	costs   map[[2]int]float64
	h       map[int]float64
	blocked map[[2]int]bool
}

func newTestGraph() *testGraph {
	return &testGraph{
		nodes:   make(map[int]*testNode),
		costs:   make(map[[2]int]float64),
		h:       make(map[int]float64),
		blocked: make(map[[2]int]bool),
	}
}

func (g *testGraph) node(id int) *testNode {
	n, ok := g.nodes[id]
	if !ok {
		n = &testNode{id: id}
		g.nodes[id] = n
	}
	return n
}

func (g *testGraph) edge(a, b int, cost float64) *testGraph {
	na, nb := g.node(a), g.node(b)
	na.neighbors = append(na.neighbors, nb)
	nb.neighbors = append(nb.neighbors, na)
	g.costs[[2]int{a, b}] = cost
	g.costs[[2]int{b, a}] = cost
	return g
}

func (g *testGraph) Lookup(id int) (Node[int], error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", errUnknownNode, id)
	}
	return n, nil
}

func (g *testGraph) HeuristicCost(_, candidate Node[int]) float64 {
	return g.h[candidate.ID()]
}

func (g *testGraph) TransitionCost(current, neighbor Node[int], costSoFar float64) float64 {
	return costSoFar + g.costs[[2]int{current.ID(), neighbor.ID()}]
}

func (g *testGraph) IsBlocked(current, neighbor Node[int]) bool {
	return g.blocked[[2]int{current.ID(), neighbor.ID()}]
}

// reopenGraph has an admissible but inconsistent heuristic: node 3 is first
// closed via the expensive branch 0-1-3 and must be reopened once the cheap
// branch 0-2-3 is expanded.
//
//	0 --1-- 1 --5-- 3 --10-- 4
//	 \             /
//	  1-- 2 --1---
func reopenGraph() *testGraph {
	g := newTestGraph().
		edge(0, 1, 1).
		edge(1, 3, 5).
		edge(0, 2, 1).
		edge(2, 3, 1).
		edge(3, 4, 10)
	g.h[2] = 11
	return g
}
