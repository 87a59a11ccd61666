// Package resolver finds the target words of a layout in a letter grid and
// reports their positions in right-to-left column numbering.
package resolver

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// CellReader is the read access the resolver needs. *model.Grid implements it.
type CellReader interface {
	Rows() int
	Cols() int
	Cell(r, c int) (string, error)
}

// Resolve returns the placements of every layout word: one record per valid
// occurrence (or only the first under model.MatchFirst), or a single
// missing/excluded record when there is none. Records follow layout order,
// then row-major scan order.
//
// Resolve is pure and fails only with model.ErrInvalidInput.
func Resolve(grid CellReader, layout model.Layout) ([]model.Placement, error) {
	cells, err := snapshot(grid)
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	s := &scanner{cells: cells, rows: len(cells), cols: grid.Cols(), markers: map[string]int{}}
	var out []model.Placement
	for i, w := range layout.Words {
		out = append(out, s.resolveWord(i, w, layout)...)
	}
	return out, nil
}

// snapshot validates the grid and reads it once, upper-cased, with every
// empty cell read as model.Blank.
func snapshot(grid CellReader) ([][]string, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", model.ErrInvalidInput)
	}
	rows, cols := grid.Rows(), grid.Cols()
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column, got %dx%d", model.ErrInvalidInput, rows, cols)
	}
	cells := make([][]string, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			v, err := grid.Cell(r, c)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d) unreadable: %v", model.ErrInvalidInput, r, c, err)
			}
			if strings.TrimSpace(v) == "" {
				v = model.Blank
			}
			cells[r][c] = strings.ToUpper(v)
		}
	}
	return cells, nil
}

type scanner struct {
	cells   [][]string
	rows    int
	cols    int
	markers map[string]int // marker text -> linear position of first occurrence, -1 if absent
}

// matchAt reports whether word (upper-cased runes) occupies row r from column s.
func (s *scanner) matchAt(word []string, r, start int) bool {
	for k, ch := range word {
		if s.cells[r][start+k] != ch {
			return false
		}
	}
	return true
}

// markerPos returns the row-major position of the first occurrence of marker.
func (s *scanner) markerPos(marker string) int {
	key := strings.ToUpper(marker)
	if pos, ok := s.markers[key]; ok {
		return pos
	}
	pos := -1
	word := runes(key)
search:
	for r := 0; r < s.rows; r++ {
		for c := 0; c+len(word) <= s.cols; c++ {
			if s.matchAt(word, r, c) {
				pos = r*s.cols + c
				break search
			}
		}
	}
	s.markers[key] = pos
	return pos
}

func (s *scanner) resolveWord(index int, w model.TargetWord, layout model.Layout) []model.Placement {
	word := runes(strings.ToUpper(w.Text))
	front, _ := w.ID.FrontWord()
	split, hasSplit := layout.RoleFor(w.Text)
	hasSplit = hasSplit && split.Covers(w.ID)

	markerPos := -1
	if w.Zone != nil {
		markerPos = s.markerPos(w.Zone.Marker)
	}

	accept := func(r, start int) bool {
		if w.Zone != nil && markerPos >= 0 && !w.Zone.Allows(r*s.cols+start, markerPos) {
			return false
		}
		if hasSplit && split.Assign(r) != w.ID {
			return false
		}
		return true
	}

	var found []model.Placement
	present := false
	lo, hi := w.Rows.Bounds(s.rows)
scan:
	for r := lo; r <= hi; r++ {
		for start := 0; start+len(word) <= s.cols; start++ {
			if !s.matchAt(word, r, start) {
				continue
			}
			present = true
			if !accept(r, start) {
				continue
			}
			end := start + len(word) - 1
			found = append(found, model.Placement{
				Index:  index,
				ID:     w.ID,
				Word:   w.Text,
				Front:  front,
				Status: model.StatusFound,
				Row:    r,
				Start:  s.cols - 1 - end,
				End:    s.cols - 1 - start,
			})
			if layout.Policy == model.MatchFirst {
				break scan
			}
		}
	}
	if len(found) > 0 {
		return found
	}

	status := model.StatusMissing
	if present {
		status = model.StatusExcluded
	}
	return []model.Placement{{
		Index:  index,
		ID:     w.ID,
		Word:   w.Text,
		Front:  front,
		Status: status,
		Row:    -1,
		Start:  -1,
		End:    -1,
	}}
}

// runes splits s into one string per character so multi-byte letters
// compare cell by cell.
func runes(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
