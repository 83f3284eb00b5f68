package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := ParseString(`
S.#.
.3#G

`)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Grid.Width)
	assert.Equal(t, 2, m.Grid.Height)
	assert.True(t, m.HasStart)
	assert.True(t, m.HasGoal)
	assert.Equal(t, Point{0, 0}, m.Start)
	assert.Equal(t, Point{3, 1}, m.Goal)
	assert.True(t, m.Grid.IsWall(Point{2, 0}))
	assert.True(t, m.Grid.IsWall(Point{2, 1}))
	assert.False(t, m.Grid.IsWall(Point{0, 0}))
	assert.Equal(t, 3.0, m.Grid.Weight(Point{1, 1}))
	assert.False(t, m.Grid.Diagonal)
}

func TestParseOptions(t *testing.T) {
	m, err := ParseString("..\n..\n", WithDiagonal())
	require.NoError(t, err)
	assert.True(t, m.Grid.Diagonal)
	assert.False(t, m.HasStart)
	assert.False(t, m.HasGoal)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", "\n\n"},
		{"ragged", "...\n..\n"},
		{"unknown cell", "..x\n"},
		{"two starts", "S.S\n"},
		{"two goals", "G\nG\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.text)
			assert.ErrorIs(t, err, ErrMalformedMap)
		})
	}
}

func TestFormat(t *testing.T) {
	m, err := ParseString("S.#\n.5#\n..G\n")
	require.NoError(t, err)
	g := m.Grid

	path := []int{g.ID(Point{0, 1}), g.ID(Point{0, 2}), g.ID(Point{1, 2}), g.ID(Point{2, 2})}
	assert.Equal(t, "S.#\n*5#\n**G\n", g.Format(path, m.Start, m.Goal))
}

func TestClassify(t *testing.T) {
	m, err := ParseString("S.#\n.5#\n..G\n")
	require.NoError(t, err)
	g := m.Grid

	tests := []struct {
		p      Point
		onPath bool
		want   CellKind
		glyph  byte
	}{
		{Point{0, 0}, true, CellStart, 'S'},
		{Point{2, 2}, true, CellGoal, 'G'},
		{Point{2, 0}, true, CellWall, '#'},
		{Point{1, 1}, true, CellPath, '*'},
		{Point{1, 1}, false, CellWeighted, '5'},
		{Point{1, 0}, false, CellFloor, '.'},
	}
	for _, tt := range tests {
		kind := g.Classify(tt.p, m.Start, m.Goal, tt.onPath)
		assert.Equal(t, tt.want, kind, "%s", tt.p)
		assert.Equal(t, tt.glyph, g.Glyph(tt.p, kind), "%s", tt.p)
	}
}
