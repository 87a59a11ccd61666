package model

import "fmt"

// WordID identifies what a lit word means to the clock firmware.
type WordID int

const (
	WordUnmapped WordID = iota // No firmware identifier
	WordHour1
	WordHour2
	WordHour3
	WordHour4
	WordHour5
	WordHour6
	WordHour7
	WordHour8
	WordHour9
	WordHour10
	WordHour11
	WordHour12
	WordEins
	WordUhr
	WordEs
	WordIst
	WordMin5
	WordMin10
	WordHalb
	WordMin20
	WordVor
	WordNach
	WordViertel
	WordDreiviertel // The DREI of DREIVIERTEL
)

var frontWords = map[WordID]string{
	WordHour1:       "hour_1",
	WordHour2:       "hour_2",
	WordHour3:       "hour_3",
	WordHour4:       "hour_4",
	WordHour5:       "hour_5",
	WordHour6:       "hour_6",
	WordHour7:       "hour_7",
	WordHour8:       "hour_8",
	WordHour9:       "hour_9",
	WordHour10:      "hour_10",
	WordHour11:      "hour_11",
	WordHour12:      "hour_12",
	WordEins:        "eins",
	WordUhr:         "uhr",
	WordEs:          "es",
	WordIst:         "ist",
	WordMin5:        "min_5",
	WordMin10:       "min_10",
	WordHalb:        "halb",
	WordMin20:       "min_20",
	WordVor:         "vor",
	WordNach:        "nach",
	WordViertel:     "viertel",
	WordDreiviertel: "dreiviertel",
}

// FrontWord returns the firmware FrontWord identifier. The second result is
// false for WordUnmapped and unknown values.
func (w WordID) FrontWord() (string, bool) {
	s, ok := frontWords[w]
	return s, ok
}

func (w WordID) String() string {
	if s, ok := w.FrontWord(); ok {
		return s
	}
	return fmt.Sprintf("unmapped(%d)", int(w))
}

// OpenEnd marks a row range that extends to the last row.
const OpenEnd = -1

// RowRange is an inclusive row constraint.
type RowRange struct {
	Min int `json:"min"`
	Max int `json:"max"` // OpenEnd = last row
}

// AllRows allows every row of the grid.
var AllRows = RowRange{Min: 0, Max: OpenEnd}

// Valid reports whether the range is well-formed.
func (rr RowRange) Valid() bool {
	return rr.Min >= 0 && (rr.Max == OpenEnd || rr.Max >= rr.Min)
}

// Bounds clamps the range to a grid with the given number of rows.
// hi < lo means no row is allowed.
func (rr RowRange) Bounds(rows int) (lo, hi int) {
	lo, hi = rr.Min, rr.Max
	if hi == OpenEnd || hi > rows-1 {
		hi = rows - 1
	}
	return lo, hi
}

// ZoneSide selects which side of the marker word a placement must fall on.
type ZoneSide int

const (
	ZoneAfter ZoneSide = iota
	ZoneBefore
)

func (z ZoneSide) String() string {
	if z == ZoneBefore {
		return "before"
	}
	return "after"
}

// ZoneRule restricts a word to one side of the first occurrence of Marker,
// compared by row-major linear position. The rule is ignored when the
// marker is absent.
type ZoneRule struct {
	Marker string   `json:"marker"`
	Side   ZoneSide `json:"side"`
}

// Allows reports whether a word starting at linear position pos satisfies the rule.
func (z ZoneRule) Allows(pos, markerPos int) bool {
	if z.Side == ZoneBefore {
		return pos < markerPos
	}
	return pos > markerPos
}

// TargetWord is one word the resolver searches for.
type TargetWord struct {
	ID   WordID    `json:"id"`
	Text string    `json:"text"`
	Rows RowRange  `json:"rows"`
	Zone *ZoneRule `json:"zone,omitempty"`
}

// NewTargetWord creates a target word without a zone rule.
func NewTargetWord(id WordID, text string, rows RowRange) TargetWord {
	return TargetWord{ID: id, Text: text, Rows: rows}
}

// WithZone returns a copy of the word restricted to one side of marker.
func (t TargetWord) WithZone(marker string, side ZoneSide) TargetWord {
	t.Zone = &ZoneRule{Marker: marker, Side: side}
	return t
}
