// Package session holds the state of one face being edited: the letter
// grid, its options, the cursor and the undo history. Every change
// re-resolves the word placements so callers always read current results.
package session

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/resolver"
)

// Cursor is the cell that receives the next typed letter.
type Cursor struct {
	Row int
	Col int
}

// Session owns a face and its derived placements.
type Session struct {
	grid       *model.Grid
	layout     model.Layout
	opts       model.Options
	cursor     Cursor
	history    *History
	placements []model.Placement
	states     []model.WordState
	log        zerolog.Logger
}

// New creates a session on a copy of g. The layout is validated once here.
func New(g *model.Grid, layout model.Layout, opts model.Options) (*Session, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", model.ErrInvalidInput)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		grid:    g.Clone(),
		layout:  layout,
		opts:    opts,
		history: NewHistory(),
		log:     zerolog.Nop(),
	}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLogger sets the logger used for resolve traces.
func (s *Session) SetLogger(l zerolog.Logger) {
	s.log = l
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *model.Grid { return s.grid.Clone() }

func (s *Session) Layout() model.Layout   { return s.layout }
func (s *Session) Options() model.Options { return s.opts }
func (s *Session) Cursor() Cursor         { return s.cursor }

// History exposes the undo stack, mostly for enabling menu items.
func (s *Session) History() *History { return s.history }

// Placements returns the placements of the last resolve.
func (s *Session) Placements() []model.Placement {
	return append([]model.Placement(nil), s.placements...)
}

// States returns one summarised state per layout word.
func (s *Session) States() []model.WordState {
	return append([]model.WordState(nil), s.states...)
}

// SetCell writes one character into the cell at r, c. An empty value or a
// space clears the cell. Entering a character moves the cursor to the next
// cell, wrapping to the start of the next row and from the last cell to
// the first.
func (s *Session) SetCell(r, c int, value string) error {
	v, err := model.NormalizeCell(value)
	if err != nil {
		return err
	}
	old, err := s.grid.Cell(r, c)
	if err != nil {
		return err
	}
	if old != v {
		s.history.Push(MakeSnapshot(s.grid, s.opts, "Set Cell"))
		if err := s.grid.SetCell(r, c, v); err != nil {
			return err
		}
	}
	s.cursor = Cursor{Row: r, Col: c}
	if v != model.Blank {
		s.advance()
	}
	return s.refresh()
}

// Type writes value at the cursor.
func (s *Session) Type(value string) error {
	return s.SetCell(s.cursor.Row, s.cursor.Col, value)
}

func (s *Session) advance() {
	s.cursor.Col++
	if s.cursor.Col >= s.grid.Cols() {
		s.cursor.Col = 0
		s.cursor.Row++
	}
	if s.cursor.Row >= s.grid.Rows() {
		s.cursor.Row = 0
	}
}

// ToggleSelected flips the selection of a non-empty cell. Blank cells
// cannot be selected and report false.
func (s *Session) ToggleSelected(r, c int) (bool, error) {
	on, err := s.grid.Selected(r, c)
	if err != nil {
		return false, err
	}
	if s.grid.IsBlank(r, c) {
		return false, nil
	}
	s.history.Push(MakeSnapshot(s.grid, s.opts, "Toggle Selection"))
	if err := s.grid.SetSelected(r, c, !on); err != nil {
		return false, err
	}
	return !on, nil
}

// MoveTo places the cursor on a cell.
func (s *Session) MoveTo(r, c int) error {
	if _, err := s.grid.Cell(r, c); err != nil {
		return err
	}
	s.cursor = Cursor{Row: r, Col: c}
	return nil
}

// Clear blanks all cells, drops the selection and resets the options.
func (s *Session) Clear() error {
	s.history.Push(MakeSnapshot(s.grid, s.opts, "Clear"))
	s.grid.Clear()
	s.opts = model.Options{}
	s.cursor = Cursor{}
	return s.refresh()
}

// SetOptions replaces the face options.
func (s *Session) SetOptions(opts model.Options) error {
	if opts == s.opts {
		return nil
	}
	s.history.Push(MakeSnapshot(s.grid, s.opts, "Options"))
	s.opts = opts
	return s.refresh()
}

// LoadTemplate copies a template into the current grid and takes over its
// options. Cells that do not fit are reported as warnings.
func (s *Session) LoadTemplate(t model.Template) ([]string, error) {
	s.history.Push(MakeSnapshot(s.grid, s.opts, "Load Template"))
	warnings := t.Apply(s.grid)
	s.opts = t.Options()
	s.cursor = Cursor{}
	if err := s.refresh(); err != nil {
		return warnings, err
	}
	for _, w := range warnings {
		s.log.Warn().Str("template", t.Name).Msg(w)
	}
	return warnings, nil
}

// Template captures the current face.
func (s *Session) Template(name string) model.Template {
	return model.NewTemplate(name, s.grid, s.opts)
}

// Undo restores the previous face. It returns false when there is nothing
// to undo.
func (s *Session) Undo() (bool, error) {
	snap, ok := s.history.Undo(MakeSnapshot(s.grid, s.opts, "Undo"))
	if !ok {
		return false, nil
	}
	s.restore(snap)
	return true, s.refresh()
}

// Redo re-applies the last undone change.
func (s *Session) Redo() (bool, error) {
	snap, ok := s.history.Redo(MakeSnapshot(s.grid, s.opts, "Redo"))
	if !ok {
		return false, nil
	}
	s.restore(snap)
	return true, s.refresh()
}

func (s *Session) restore(snap Snapshot) {
	s.grid = snap.Grid.Clone()
	s.opts = snap.Options
	if s.cursor.Row >= s.grid.Rows() || s.cursor.Col >= s.grid.Cols() {
		s.cursor = Cursor{}
	}
}

// refresh re-resolves the grid and logs one line per placement.
func (s *Session) refresh() error {
	placements, err := resolver.Resolve(s.grid, s.layout)
	if err != nil {
		return fmt.Errorf("failed to resolve words: %w", err)
	}
	s.placements = placements
	s.states = resolver.Summarize(s.layout, placements, s.opts)
	for _, p := range placements {
		s.log.Debug().
			Str("word", p.Word).
			Str("status", p.Status.String()).
			Int("row", p.Row).
			Int("start", p.Start).
			Int("end", p.End).
			Msg("placement")
	}
	return nil
}
