package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitedIndexKeepsDiscoveryOrder(t *testing.T) {
	pool := newRecordPool[int](4)
	visited := newVisitedIndex[int](4)

	for _, id := range []int{7, 3, 5} {
		visited.Add(pool.Allocate(&testNode{id: id}))
	}
	assert.Nil(t, visited.Get(1))
	require.NotNil(t, visited.Get(3))
	assert.Equal(t, 3, visited.Get(3).ID)
	assert.Equal(t, 3, visited.Len())

	var order []int
	for _, r := range visited.Ordered() {
		order = append(order, r.ID)
	}
	assert.Equal(t, []int{7, 3, 5}, order)

	visited.Reset()
	assert.Zero(t, visited.Len())
	assert.Nil(t, visited.Get(7))
}
