package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Template is a saved letter face. The cells/selected/varzwanzig/varviertel
// keys stay compatible with existing template files.
type Template struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	CreatedAt  string     `json:"created_at,omitempty"`
	Rows       int        `json:"rows,omitempty"`
	Cols       int        `json:"cols,omitempty"`
	Cells      [][]string `json:"cells"`
	Selected   [][]bool   `json:"selected"`
	VarZwanzig int        `json:"varzwanzig"`
	VarViertel int        `json:"varviertel"`
	MinAnzeige int        `json:"minanzeige"`
}

// NewTemplate captures the grid and options in a template with a fresh ID.
func NewTemplate(name string, g *Grid, opts Options) Template {
	return Template{
		ID:         uuid.New().String()[:8],
		Name:       name,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Cells:      g.Cells(),
		Selected:   g.SelectionMask(),
		VarZwanzig: boolToInt(opts.NoZwanzig),
		VarViertel: boolToInt(opts.NoDreiviertel),
		MinAnzeige: boolToInt(opts.NoMinuteDots),
	}
}

// Options returns the face options stored in the template.
func (t Template) Options() Options {
	return Options{
		NoZwanzig:     t.VarZwanzig != 0,
		NoDreiviertel: t.VarViertel != 0,
		NoMinuteDots:  t.MinAnzeige != 0,
	}
}

// Size returns the stored dimensions, falling back to the cell table.
func (t Template) Size() (rows, cols int) {
	rows, cols = t.Rows, t.Cols
	if rows == 0 {
		rows = len(t.Cells)
	}
	if cols == 0 {
		for _, r := range t.Cells {
			if len(r) > cols {
				cols = len(r)
			}
		}
	}
	return rows, cols
}

// ToGrid builds a grid of the template's own size.
func (t Template) ToGrid() (*Grid, []string, error) {
	rows, cols := t.Size()
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	warnings := t.Apply(g)
	return g, warnings, nil
}

// Apply copies the template into g. Cells outside g are ignored, missing
// cells stay blank and a missing selection counts as unselected. Invalid
// characters are skipped and reported as warnings.
func (t Template) Apply(g *Grid) []string {
	var warnings []string
	g.Clear()
	for r, row := range t.Cells {
		for c, v := range row {
			if r >= g.Rows() || c >= g.Cols() {
				continue
			}
			if err := g.SetCell(r, c, v); err != nil {
				warnings = append(warnings, fmt.Sprintf("cell %d,%d: %v", r, c, err))
			}
		}
	}
	for r, row := range t.Selected {
		for c, on := range row {
			if on && !g.IsBlank(r, c) {
				_ = g.SetSelected(r, c, true)
			}
		}
	}
	if r, c := t.Size(); r > g.Rows() || c > g.Cols() {
		warnings = append(warnings, fmt.Sprintf("template is %dx%d, grid is %dx%d; extra cells ignored", r, c, g.Rows(), g.Cols()))
	}
	return warnings
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// TemplateStore holds a library of saved faces.
type TemplateStore struct {
	Templates []Template `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []Template{},
	}
}

// Add adds a template to the store, replacing one with the same ID.
func (ts *TemplateStore) Add(t Template) {
	if t.ID == "" {
		t.ID = uuid.New().String()[:8]
	}
	for i := range ts.Templates {
		if ts.Templates[i].ID == t.ID {
			ts.Templates[i] = t
			return
		}
	}
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *Template {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *Template {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
