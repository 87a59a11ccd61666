package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Blank is the normalised content of an empty cell.
const Blank = " "

// Default clock face dimensions.
const (
	DefaultRows = 10
	DefaultCols = 11
)

// Grid is a fixed R x C table of letter cells with a parallel selection mask.
// Dimensions never change after construction.
type Grid struct {
	rows     int
	cols     int
	cells    [][]string
	selected [][]bool
}

// NewGrid creates a blank grid. Both dimensions must be at least 1.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column, got %dx%d", ErrInvalidInput, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]string, rows)
	g.selected = make([][]bool, rows)
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]string, cols)
		g.selected[r] = make([]bool, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = Blank
		}
	}
	return g, nil
}

// GridFromRows builds a grid from one string per row. Short rows are padded
// with blanks; spaces and dots become blanks.
func GridFromRows(rows []string) (*Grid, error) {
	cols := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r); n > cols {
			cols = n
		}
	}
	g, err := NewGrid(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		c := 0
		for _, ch := range line {
			s := string(ch)
			if ch == '.' || ch == '_' {
				s = Blank
			}
			if err := g.SetCell(r, c, s); err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			c++
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inRange(r, c int) error {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d grid", ErrOutOfRange, r, c, g.rows, g.cols)
	}
	return nil
}

// Cell returns the content of a cell; blanks are returned as Blank.
func (g *Grid) Cell(r, c int) (string, error) {
	if err := g.inRange(r, c); err != nil {
		return "", err
	}
	return g.cells[r][c], nil
}

// IsBlank reports whether the cell is empty. Out-of-range cells count as blank.
func (g *Grid) IsBlank(r, c int) bool {
	s, err := g.Cell(r, c)
	return err != nil || s == Blank
}

// SetCell stores a normalised character. Clearing a cell also clears its selection.
func (g *Grid) SetCell(r, c int, value string) error {
	if err := g.inRange(r, c); err != nil {
		return err
	}
	v, err := NormalizeCell(value)
	if err != nil {
		return err
	}
	g.cells[r][c] = v
	if v == Blank {
		g.selected[r][c] = false
	}
	return nil
}

// Selected reports the selection flag of a cell.
func (g *Grid) Selected(r, c int) (bool, error) {
	if err := g.inRange(r, c); err != nil {
		return false, err
	}
	return g.selected[r][c], nil
}

// SetSelected sets the selection flag of a cell.
func (g *Grid) SetSelected(r, c int, on bool) error {
	if err := g.inRange(r, c); err != nil {
		return err
	}
	g.selected[r][c] = on
	return nil
}

// Clear blanks every cell and drops the selection.
func (g *Grid) Clear() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = Blank
			g.selected[r][c] = false
		}
	}
}

// ClearSelection drops the selection but keeps the letters.
func (g *Grid) ClearSelection() {
	for r := range g.selected {
		for c := range g.selected[r] {
			g.selected[r][c] = false
		}
	}
}

// RowText returns the letters of one row as a string, blanks included.
func (g *Grid) RowText(r int) string {
	if r < 0 || r >= g.rows {
		return ""
	}
	return strings.Join(g.cells[r], "")
}

// Cells returns a copy of the cell table.
func (g *Grid) Cells() [][]string {
	out := make([][]string, g.rows)
	for r := range g.cells {
		out[r] = append([]string(nil), g.cells[r]...)
	}
	return out
}

// SelectionMask returns a copy of the selection table.
func (g *Grid) SelectionMask() [][]bool {
	out := make([][]bool, g.rows)
	for r := range g.selected {
		out[r] = append([]bool(nil), g.selected[r]...)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:     g.rows,
		cols:     g.cols,
		cells:    g.Cells(),
		selected: g.SelectionMask(),
	}
}

// Equal reports whether two grids have the same size, letters and selection.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != o.cells[r][c] || g.selected[r][c] != o.selected[r][c] {
				return false
			}
		}
	}
	return true
}

// NormalizeCell converts user input to the stored cell form: one upper-case
// letter or digit, or Blank for empty input.
func NormalizeCell(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Blank, nil
	}
	if utf8.RuneCountInString(v) != 1 {
		return "", fmt.Errorf("%w: cell takes a single character, got %q", ErrInvalidInput, value)
	}
	ch, _ := utf8.DecodeRuneInString(v)
	if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
		return "", fmt.Errorf("%w: %q is not a letter or digit", ErrInvalidInput, value)
	}
	return string(unicode.ToUpper(ch)), nil
}
