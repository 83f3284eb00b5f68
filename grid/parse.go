package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedMap is returned by Parse for maps it cannot read.
var ErrMalformedMap = errors.New("grid: malformed map")

// Map is a parsed grid with its optional start and goal markers.
type Map struct {
	Grid     *Grid
	Start    Point
	Goal     Point
	HasStart bool
	HasGoal  bool
}

// Parse reads an ASCII map, one row per line:
//
//	.  open cell
//	#  wall
//	S  start (open)
//	G  goal (open)
//	1-9  open cell with that weight
//
// Rows must all have the same width. Blank lines are skipped.
func Parse(r io.Reader, opts ...Option) (*Map, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedMap)
	}

	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedMap, y, len(row), width)
		}
	}

	m := &Map{Grid: New(width, len(rows), opts...)}
	for y, row := range rows {
		for x, ch := range []byte(row) {
			p := Point{x, y}
			switch {
			case ch == '.':
			case ch == '#':
				m.Grid.SetWall(p, true)
			case ch == 'S':
				if m.HasStart {
					return nil, fmt.Errorf("%w: second start at %s", ErrMalformedMap, p)
				}
				m.Start, m.HasStart = p, true
			case ch == 'G':
				if m.HasGoal {
					return nil, fmt.Errorf("%w: second goal at %s", ErrMalformedMap, p)
				}
				m.Goal, m.HasGoal = p, true
			case ch >= '1' && ch <= '9':
				m.Grid.SetWeight(p, float64(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %s", ErrMalformedMap, ch, p)
			}
		}
	}
	return m, nil
}

// ParseString is Parse for an in-memory map.
func ParseString(text string, opts ...Option) (*Map, error) {
	return Parse(strings.NewReader(text), opts...)
}

// CellKind is what a cell shows when the grid is drawn.
type CellKind int

const (
	CellFloor CellKind = iota
	CellWall
	CellWeighted
	CellStart
	CellGoal
	CellPath
)

// Classify decides how p is drawn. Start and goal win over walls, walls over
// the path, and the path over terrain.
func (g *Grid) Classify(p, start, goal Point, onPath bool) CellKind {
	switch {
	case p == start:
		return CellStart
	case p == goal:
		return CellGoal
	case g.IsWall(p):
		return CellWall
	case onPath:
		return CellPath
	case g.Weight(p) > 1:
		return CellWeighted
	}
	return CellFloor
}

// Glyph is the map character of a cell of the given kind at p.
func (g *Grid) Glyph(p Point, kind CellKind) byte {
	switch kind {
	case CellStart:
		return 'S'
	case CellGoal:
		return 'G'
	case CellWall:
		return '#'
	case CellPath:
		return '*'
	case CellWeighted:
		return '0' + byte(min(g.Weight(p), 9))
	}
	return '.'
}

// Format writes the grid as ASCII, drawing path cells with '*'.
func (g *Grid) Format(path []int, start, goal Point) string {
	onPath := make(map[int]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{x, y}
			b.WriteByte(g.Glyph(p, g.Classify(p, start, goal, onPath[g.ID(p)])))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
