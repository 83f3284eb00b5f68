package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecords(totals ...float64) []*SearchRecord[int] {
	records := make([]*SearchRecord[int], len(totals))
	for i, total := range totals {
		records[i] = &SearchRecord[int]{ID: i}
		records[i].reset(nil, total, 0, Open)
	}
	return records
}

func ids(records []*SearchRecord[int]) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFrontierOrder(t *testing.T) {
	for _, kind := range []FrontierKind{FrontierSorted, FrontierHeap} {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFrontier[int](kind, 4)
			records := newRecords(5, 1, 3, 1, 5, 0)
			for _, r := range records {
				f.Insert(r)
			}

			// Equal totals keep insertion order.
			assert.Equal(t, []int{5, 1, 3, 2, 0, 4}, ids(f.Ordered()))
			assert.Equal(t, 6, f.Len())
			assert.Equal(t, 5, f.Peek().ID)

			var popped []int
			for f.Len() > 0 {
				popped = append(popped, f.RemoveFirst().ID)
			}
			assert.Equal(t, []int{5, 1, 3, 2, 0, 4}, popped)
			assert.Nil(t, f.RemoveFirst())
			assert.Nil(t, f.Peek())
		})
	}
}

func TestFrontierRemove(t *testing.T) {
	for _, kind := range []FrontierKind{FrontierSorted, FrontierHeap} {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFrontier[int](kind, 4)
			records := newRecords(4, 2, 3, 1)
			for _, r := range records {
				f.Insert(r)
			}

			require.True(t, f.Remove(records[2]))
			assert.False(t, f.Remove(records[2]))
			assert.Equal(t, []int{3, 1, 0}, ids(f.Ordered()))

			// Reinserting after a cost change places the record behind equal totals.
			records[2].reset(nil, 1, 0, Open)
			f.Insert(records[2])
			assert.Equal(t, []int{3, 2, 1, 0}, ids(f.Ordered()))
		})
	}
}

func TestFrontierReset(t *testing.T) {
	for _, kind := range []FrontierKind{FrontierSorted, FrontierHeap} {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFrontier[int](kind, 2)
			for _, r := range newRecords(1, 2, 3) {
				f.Insert(r)
			}
			f.Reset()
			assert.Equal(t, 0, f.Len())
			assert.Empty(t, f.Ordered())

			records := newRecords(2, 2)
			f.Insert(records[1])
			f.Insert(records[0])
			assert.Equal(t, []int{1, 0}, ids(f.Ordered()))
		})
	}
}
