package fill

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"

	"crosswarped.com/fill/internal/words"
)

// Direction is an enum representing the direction of a slot in a grid, either 'Across' or 'Down'.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Variable identifies a fillable slot in the grid: its starting cell, its
// direction, and the number of cells it covers. Variables are plain
// comparable values so they can key maps and be collected in sets.
type Variable struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

// Cells returns the (row, col) coordinates covered by the variable, in order.
func (v Variable) Cells() [][2]int {
	cells := make([][2]int, v.Length)
	for k := range v.Length {
		if v.Direction == Across {
			cells[k] = [2]int{v.Row, v.Col + k}
		} else {
			cells[k] = [2]int{v.Row + k, v.Col}
		}
	}
	return cells
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d,%d) %s len=%d", v.Row, v.Col, v.Direction, v.Length)
}

// Crossword is the puzzle description the solver consumes: the grid shape,
// the slots derived from it, the pairwise overlaps between slots, and the
// word list that every domain is drawn from.
type Crossword struct {
	Height int
	Width  int

	// Words is the deduplicated word list, sorted so that domain iteration
	// has a single canonical order.
	Words []string

	// Variables is sorted by (row, col, direction) so that heuristic
	// tie-breaking is deterministic.
	Variables []Variable

	fillable  [][]bool
	overlaps  map[[2]Variable][2]int
	neighbors map[Variable][]Variable
}

const fillableCell = '_'

// NewCrossword builds a puzzle description from a structure grid and a word
// list. Cells holding '_' are fillable; any other rune is blocked. Slots are
// maximal runs of fillable cells of length at least two. Words are normalized
// and must then contain only the letters a-z; anything else is an error.
func NewCrossword(structure []string, wordList []string) (*Crossword, error) {
	if len(structure) == 0 {
		return nil, fmt.Errorf("structure is empty")
	}
	ws := words.Normalize(wordList)
	if len(ws) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	for _, w := range ws {
		for _, r := range w {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", w, r)
			}
		}
	}
	slices.Sort(ws)

	height := len(structure)
	width := 0
	for _, row := range structure {
		width = max(width, len([]rune(row)))
	}
	if width == 0 {
		return nil, fmt.Errorf("structure has no columns")
	}

	fillable := make([][]bool, height)
	for i, row := range structure {
		fillable[i] = make([]bool, width)
		for j, r := range []rune(row) {
			fillable[i][j] = r == fillableCell
		}
	}

	cw := &Crossword{
		Height:    height,
		Width:     width,
		Words:     ws,
		fillable:  fillable,
		overlaps:  make(map[[2]Variable][2]int),
		neighbors: make(map[Variable][]Variable),
	}
	cw.findVariables()
	cw.findOverlaps()
	return cw, nil
}

// LoadCrossword reads a structure file and a word file and builds the puzzle
// description from them.
func LoadCrossword(ctx context.Context, structurePath, wordsPath string) (*Crossword, error) {
	f, err := os.Open(structurePath)
	if err != nil {
		return nil, fmt.Errorf("opening structure: %w", err)
	}
	defer f.Close()

	var structure []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		structure = append(structure, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}

	wordList, err := words.FromFile(ctx, wordsPath)
	if err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}

	return NewCrossword(structure, wordList)
}

// Fillable reports whether the cell at (row, col) accepts a letter.
func (c *Crossword) Fillable(row, col int) bool {
	return c.fillable[row][col]
}

// Overlap returns the letter-index pair (i, j) at which x and y intersect:
// the i-th letter of x's word must equal the j-th letter of y's word. The
// second return is false if the two variables share no cell.
func (c *Crossword) Overlap(x, y Variable) ([2]int, bool) {
	ov, ok := c.overlaps[[2]Variable{x, y}]
	return ov, ok
}

// Neighbors returns the variables that intersect v, in canonical order.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return c.neighbors[v]
}

func (c *Crossword) findVariables() {
	addRun := func(row, col int, dir Direction, length int) {
		if length < 2 {
			return
		}
		c.Variables = append(c.Variables, Variable{
			Row:       row,
			Col:       col,
			Direction: dir,
			Length:    length,
		})
	}

	for i := range c.Height {
		start := -1
		for j := range c.Width {
			if c.fillable[i][j] {
				if start < 0 {
					start = j
				}
				continue
			}
			if start >= 0 {
				addRun(i, start, Across, j-start)
				start = -1
			}
		}
		if start >= 0 {
			addRun(i, start, Across, c.Width-start)
		}
	}

	for j := range c.Width {
		start := -1
		for i := range c.Height {
			if c.fillable[i][j] {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				addRun(start, j, Down, i-start)
				start = -1
			}
		}
		if start >= 0 {
			addRun(start, j, Down, c.Height-start)
		}
	}

	slices.SortFunc(c.Variables, compareVariables)
}

func compareVariables(a, b Variable) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	if a.Col != b.Col {
		return a.Col - b.Col
	}
	return int(a.Direction) - int(b.Direction)
}

func (c *Crossword) findOverlaps() {
	// cellIndex maps each covered cell back to its letter index within the
	// variable, so intersections fall out of a single pass per pair.
	cellIndex := make(map[Variable]map[[2]int]int, len(c.Variables))
	for _, v := range c.Variables {
		idx := make(map[[2]int]int, v.Length)
		for k, cell := range v.Cells() {
			idx[cell] = k
		}
		cellIndex[v] = idx
	}

	for _, x := range c.Variables {
		for _, y := range c.Variables {
			if x == y {
				continue
			}
			yIdx := cellIndex[y]
			for i, cell := range x.Cells() {
				if j, ok := yIdx[cell]; ok {
					c.overlaps[[2]Variable{x, y}] = [2]int{i, j}
					c.neighbors[x] = append(c.neighbors[x], y)
					break
				}
			}
		}
	}
}
