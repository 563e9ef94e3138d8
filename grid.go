package fill

import (
	"fmt"
	"strings"
)

const blockedRune = '█'

// Grid is a 2D grid of runes.
//
// It represents a solved crossword laid out cell by cell, with blocked cells
// rendered as '█' and unfilled fillable cells as spaces.
type Grid struct {
	grid [][]rune
}

func NewGrid(g [][]rune) Grid {
	return Grid{
		grid: g,
	}
}

// RenderGrid lays an assignment's words into the crossword's cells.
func RenderGrid(cw *Crossword, assignment Assignment) Grid {
	g := make([][]rune, cw.Height)
	for i := range g {
		g[i] = make([]rune, cw.Width)
		for j := range g[i] {
			if cw.Fillable(i, j) {
				g[i][j] = ' '
			} else {
				g[i][j] = blockedRune
			}
		}
	}

	for v, word := range assignment {
		for k, cell := range v.Cells() {
			g[cell[0]][cell[1]] = rune(word[k])
		}
	}

	return NewGrid(g)
}

func (g Grid) Width() int {
	return len(g.grid[0])
}

func (g Grid) Height() int {
	return len(g.grid)
}

func (g Grid) Get(x, y int) rune {
	return g.grid[y][x]
}

func (g Grid) Repr() string {
	lines := make([]string, g.Height())
	for y := range g.Height() {
		lines[y] = string(g.grid[y])
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, grid: %v}", g.Width(), g.Height(), g.grid)
}
