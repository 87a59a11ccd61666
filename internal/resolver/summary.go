package resolver

import (
	"fmt"
	"io"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// Disabled reports whether the face options switch a word off.
func Disabled(id model.WordID, opts model.Options) bool {
	switch id {
	case model.WordMin20:
		return opts.NoZwanzig
	case model.WordDreiviertel:
		return opts.NoDreiviertel
	}
	return false
}

// Summarize folds placements into one state per layout word.
func Summarize(layout model.Layout, placements []model.Placement, opts model.Options) []model.WordState {
	states := make([]model.WordState, len(layout.Words))
	for i, w := range layout.Words {
		states[i] = model.WordState{Index: i, Word: w, Status: model.StatusMissing}
	}
	for _, p := range placements {
		if p.Index < 0 || p.Index >= len(states) {
			continue
		}
		st := &states[p.Index]
		if p.Found() {
			st.Count++
			st.Status = model.StatusFound
		} else if st.Count == 0 {
			st.Status = p.Status
		}
	}
	for i := range states {
		if Disabled(states[i].Word.ID, opts) {
			states[i].Status = model.StatusDisabled
		}
	}
	return states
}

// First returns the first found placement for a word identity.
func First(placements []model.Placement, id model.WordID) (model.Placement, bool) {
	for _, p := range placements {
		if p.ID == id && p.Found() {
			return p, true
		}
	}
	return model.Placement{}, false
}

// Dump writes one line per placement.
func Dump(w io.Writer, placements []model.Placement) error {
	for _, p := range placements {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}
	return nil
}
