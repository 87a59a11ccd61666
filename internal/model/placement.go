package model

import "fmt"

// Status is the outcome of resolving one target word.
type Status int

const (
	StatusFound    Status = iota
	StatusMissing         // Not textually present in the allowed rows
	StatusExcluded        // Present, but every occurrence was rejected by a zone rule or role split
	StatusDisabled        // Switched off by the face options
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusMissing:
		return "missing"
	case StatusExcluded:
		return "excluded"
	case StatusDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "found":
		*s = StatusFound
	case "missing":
		*s = StatusMissing
	case "excluded":
		*s = StatusExcluded
	case "disabled":
		*s = StatusDisabled
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, string(b))
	}
	return nil
}

// Placement is one resolver result. Columns are numbered from the right edge;
// Row, Start and End are -1 when the status is not StatusFound.
type Placement struct {
	Index  int    `json:"index"` // position of the word in the layout
	ID     WordID `json:"-"`
	Word   string `json:"word"`
	Front  string `json:"front_word,omitempty"`
	Status Status `json:"status"`
	Row    int    `json:"row"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// Found reports whether the placement has a position.
func (p Placement) Found() bool {
	return p.Status == StatusFound
}

// Span returns the lit cells of a found placement.
func (p Placement) Span() Span {
	return Span{Row: p.Row, Start: p.Start, End: p.End}
}

func (p Placement) String() string {
	if !p.Found() {
		return fmt.Sprintf("%2d %-8s %s", p.Index, p.Word, p.Status)
	}
	return fmt.Sprintf("%2d %-8s row=%d start=%d end=%d", p.Index, p.Word, p.Row, p.Start, p.End)
}

// WordState summarises the placements of one layout word for display.
type WordState struct {
	Index  int        `json:"index"`
	Word   TargetWord `json:"word"`
	Status Status     `json:"status"`
	Count  int        `json:"count"` // number of found occurrences
}
