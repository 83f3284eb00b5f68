package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	astar "github.com/pdrpinto/astarstep"
	"github.com/pdrpinto/astarstep/grid"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")

	styleWall    = lipgloss.NewStyle().Foreground(colorDim)
	stylePath    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleEnd     = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleClosed  = lipgloss.NewStyle().Foreground(colorGray)
	styleOpen    = lipgloss.NewStyle().Foreground(colorYellow)
	styleWeight  = lipgloss.NewStyle().Foreground(colorRed)
	styleSummary = lipgloss.NewStyle().Bold(true)
)

// renderGrid draws the map with the explored cells and the path.
func renderGrid(g *grid.Grid, path []int, visited []astar.RecordInfo[int], start, goal grid.Point) string {
	status := make(map[int]astar.Status, len(visited))
	for _, info := range visited {
		status[info.ID] = info.Status
	}
	onPath := make(map[int]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Point{X: x, Y: y}
			id := g.ID(p)
			kind := g.Classify(p, start, goal, onPath[id])
			glyph := string(g.Glyph(p, kind))
			switch {
			case kind == grid.CellStart || kind == grid.CellGoal:
				b.WriteString(styleEnd.Render(glyph))
			case kind == grid.CellWall:
				b.WriteString(styleWall.Render(glyph))
			case kind == grid.CellPath:
				b.WriteString(stylePath.Render(glyph))
			case status[id] == astar.Closed:
				b.WriteString(styleClosed.Render("o"))
			case status[id] == astar.Open:
				b.WriteString(styleOpen.Render("+"))
			case kind == grid.CellWeighted:
				b.WriteString(styleWeight.Render(glyph))
			default:
				b.WriteString(glyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderSummary(result astar.Result[int], stats astar.Stats) string {
	if !result.Found {
		return styleSummary.Render(fmt.Sprintf("no path (%d expanded, %d visited)", stats.Expanded, stats.Visited))
	}
	line := fmt.Sprintf("cost %.2f, %d steps, %d expanded, %d visited",
		result.TotalCost, len(result.Path), stats.Expanded, stats.Visited)
	if stats.PoolGrowths > 0 {
		line += fmt.Sprintf(", pool grew %dx to %d", stats.PoolGrowths, stats.PoolCapacity)
	}
	return styleSummary.Render(line)
}
