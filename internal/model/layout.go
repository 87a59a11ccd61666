package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MatchPolicy controls how many occurrences of a word are reported.
type MatchPolicy int

const (
	MatchAll   MatchPolicy = iota // Every valid occurrence (clock layout)
	MatchFirst                    // First valid occurrence in row-major order (tabular layout)
)

func (p MatchPolicy) String() string {
	if p == MatchFirst {
		return "first"
	}
	return "all"
}

// RoleSplit gives words that share a spelling different identities by row:
// an occurrence above Threshold belongs to Lower, from Threshold on to Upper.
type RoleSplit struct {
	Text      string `json:"text"`
	Threshold int    `json:"threshold"`
	Lower     WordID `json:"lower"`
	Upper     WordID `json:"upper"`
}

// Assign returns the identity an occurrence at row takes.
func (s RoleSplit) Assign(row int) WordID {
	if row < s.Threshold {
		return s.Lower
	}
	return s.Upper
}

// Covers reports whether the split decides the identity of id.
func (s RoleSplit) Covers(id WordID) bool {
	return id == s.Lower || id == s.Upper
}

// Span is a run of lit cells in right-to-left column numbering.
type Span struct {
	Row   int `json:"row"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// ExtraCase is a fixed firmware case that does not come from a resolved word.
type ExtraCase struct {
	Name  string `json:"name"`
	Spans []Span `json:"spans"`
}

// Layout is the ordered list of target words plus the rules used to resolve them.
type Layout struct {
	Name   string       `json:"name"`
	Words  []TargetWord `json:"words"`
	Policy MatchPolicy  `json:"policy"`
	Roles  []RoleSplit  `json:"roles,omitempty"`
	Extras []ExtraCase  `json:"extras,omitempty"`
}

// RoleFor returns the role split for a spelling, if any.
func (l Layout) RoleFor(text string) (RoleSplit, bool) {
	for _, s := range l.Roles {
		if strings.EqualFold(s.Text, text) {
			return s, true
		}
	}
	return RoleSplit{}, false
}

// Validate checks the layout preconditions of the resolver.
func (l Layout) Validate() error {
	if len(l.Words) == 0 {
		return fmt.Errorf("%w: layout %q has no target words", ErrInvalidInput, l.Name)
	}
	for i, w := range l.Words {
		if utf8.RuneCountInString(w.Text) == 0 {
			return fmt.Errorf("%w: target word %d is empty", ErrInvalidInput, i)
		}
		if !w.Rows.Valid() {
			return fmt.Errorf("%w: target word %q has invalid row range %d..%d", ErrInvalidInput, w.Text, w.Rows.Min, w.Rows.Max)
		}
		if w.Zone != nil && strings.TrimSpace(w.Zone.Marker) == "" {
			return fmt.Errorf("%w: target word %q has a zone rule without marker", ErrInvalidInput, w.Text)
		}
	}
	return nil
}

// Layout names accepted by LayoutByName.
const (
	LayoutClock   = "clock"
	LayoutTabular = "tabular"
)

// LayoutNames lists the built-in layouts for UI dropdowns.
func LayoutNames() []string {
	return []string{LayoutClock, LayoutTabular}
}

// LayoutByName returns a built-in layout sized for the given grid.
func LayoutByName(name string, rows, cols int) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LayoutClock:
		return ClockLayout(rows, cols), nil
	case LayoutTabular:
		return TabularLayout(), nil
	default:
		return Layout{}, fmt.Errorf("%w: unknown layout %q", ErrInvalidInput, name)
	}
}

// ClockLayout is the German word-clock layout: hour words in the lower rows,
// minute words in rows 0..4, every occurrence reported.
func ClockLayout(rows, cols int) Layout {
	hours := RowRange{Min: 3, Max: OpenEnd}
	minutes := RowRange{Min: 0, Max: 4}
	l := Layout{
		Name:   LayoutClock,
		Policy: MatchAll,
		Words: []TargetWord{
			NewTargetWord(WordUhr, "UHR", hours),
			NewTargetWord(WordEins, "EINS", hours),
			NewTargetWord(WordHour2, "ZWEI", hours),
			NewTargetWord(WordHour3, "DREI", hours),
			NewTargetWord(WordHour4, "VIER", hours),
			NewTargetWord(WordHour5, "FÜNF", hours),
			NewTargetWord(WordHour6, "SECHS", hours),
			NewTargetWord(WordHour7, "SIEBEN", hours),
			NewTargetWord(WordHour8, "ACHT", hours),
			NewTargetWord(WordHour9, "NEUN", hours),
			NewTargetWord(WordHour10, "ZEHN", hours),
			NewTargetWord(WordHour11, "ELF", hours),
			NewTargetWord(WordHour12, "ZWÖLF", hours),
			NewTargetWord(WordHour1, "EIN", hours),
			NewTargetWord(WordEs, "ES", minutes),
			NewTargetWord(WordIst, "IST", minutes),
			NewTargetWord(WordMin5, "FÜNF", minutes),
			NewTargetWord(WordMin10, "ZEHN", minutes),
			NewTargetWord(WordHalb, "HALB", minutes),
			NewTargetWord(WordMin20, "ZWANZIG", minutes),
			NewTargetWord(WordVor, "VOR", minutes),
			NewTargetWord(WordNach, "NACH", minutes),
			NewTargetWord(WordDreiviertel, "DREI", minutes),
			NewTargetWord(WordViertel, "VIERTEL", minutes),
		},
		Roles: []RoleSplit{
			{Text: "FÜNF", Threshold: 4, Lower: WordMin5, Upper: WordHour5},
			{Text: "ZEHN", Threshold: 5, Lower: WordMin10, Upper: WordHour10},
			{Text: "DREI", Threshold: 5, Lower: WordDreiviertel, Upper: WordHour3},
		},
	}
	if rows == DefaultRows && cols == DefaultCols {
		l.Extras = []ExtraCase{{
			Name: "funk",
			Spans: []Span{
				{Row: 3, Start: 4, End: 7},
				{Row: 8, Start: 5, End: 10},
				{Row: 9, Start: 2, End: 4},
			},
		}}
	}
	return l
}

// TabularLayout searches the whole grid, reports the first occurrence of each
// word and separates the hour words from the minute words by the HALB marker.
func TabularLayout() Layout {
	after := func(w TargetWord) TargetWord { return w.WithZone("HALB", ZoneAfter) }
	before := func(w TargetWord) TargetWord { return w.WithZone("HALB", ZoneBefore) }
	return Layout{
		Name:   LayoutTabular,
		Policy: MatchFirst,
		Words: []TargetWord{
			NewTargetWord(WordUhr, "UHR", AllRows),
			NewTargetWord(WordEins, "EINS", AllRows),
			NewTargetWord(WordHour2, "ZWEI", AllRows),
			after(NewTargetWord(WordHour3, "DREI", AllRows)),
			after(NewTargetWord(WordHour4, "VIER", AllRows)),
			after(NewTargetWord(WordHour5, "FÜNF", AllRows)),
			NewTargetWord(WordHour6, "SECHS", AllRows),
			NewTargetWord(WordHour7, "SIEBEN", AllRows),
			NewTargetWord(WordHour8, "ACHT", AllRows),
			NewTargetWord(WordHour9, "NEUN", AllRows),
			after(NewTargetWord(WordHour10, "ZEHN", AllRows)),
			NewTargetWord(WordHour11, "ELF", AllRows),
			NewTargetWord(WordHour12, "ZWÖLF", AllRows),
			NewTargetWord(WordHour1, "EIN", AllRows),
			NewTargetWord(WordEs, "ES", AllRows),
			NewTargetWord(WordIst, "IST", AllRows),
			before(NewTargetWord(WordMin5, "FÜNF", AllRows)),
			before(NewTargetWord(WordMin10, "ZEHN", AllRows)),
			NewTargetWord(WordHalb, "HALB", AllRows),
			NewTargetWord(WordMin20, "ZWANZIG", AllRows),
			NewTargetWord(WordVor, "VOR", AllRows),
			NewTargetWord(WordNach, "NACH", AllRows),
			before(NewTargetWord(WordDreiviertel, "DREI", AllRows)),
			NewTargetWord(WordViertel, "VIERTEL", AllRows),
		},
	}
}
