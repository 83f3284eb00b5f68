package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPoolGrowKeepsRecordsInPlace(t *testing.T) {
	pool := newRecordPool[int](2)
	var grown [][2]int
	pool.onGrow = func(oldCapacity, newCapacity int) {
		grown = append(grown, [2]int{oldCapacity, newCapacity})
	}

	first := pool.Allocate(&testNode{id: 1})
	first.reset(nil, 3, 4, Open)
	second := pool.Allocate(&testNode{id: 2})
	second.reset(first, 5, 1, Open)

	third := pool.Allocate(&testNode{id: 3})
	third.reset(second, 7, 0, Open)

	assert.Equal(t, [][2]int{{2, 4}}, grown)
	assert.Equal(t, 4, pool.Cap())
	assert.Equal(t, 3, pool.Len())

	// Records allocated before the growth are untouched.
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 7.0, first.CostTotal)
	assert.Same(t, first, second.Parent)
	assert.Same(t, second, third.Parent)

	pool.Allocate(&testNode{id: 4})
	pool.Allocate(&testNode{id: 5})
	assert.Equal(t, [][2]int{{2, 4}, {4, 8}}, grown)
}

func TestRecordPoolResetReusesStorage(t *testing.T) {
	pool := newRecordPool[int](4)
	a := pool.Allocate(&testNode{id: 1})
	a.reset(nil, 1, 1, Closed)

	pool.Reset()
	require.Equal(t, 0, pool.Len())

	b := pool.Allocate(&testNode{id: 9})
	assert.Same(t, a, b)
	assert.Equal(t, 9, b.ID)
	assert.Nil(t, b.Parent)
}

func TestRecordPoolDefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultPoolCapacity, newRecordPool[int](0).Cap())
}

func TestSearchRecordResetRecomputesTotal(t *testing.T) {
	var r SearchRecord[int]
	r.reset(nil, 2.5, 4, Open)
	assert.Equal(t, 6.5, r.CostTotal)

	r.reset(nil, 1, 4, Closed)
	assert.Equal(t, 5.0, r.CostTotal)
	assert.Equal(t, Closed, r.Status)
}
