package widgets

import (
	"image/color"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// Word state colors, shared by the word list and the face preview.
var (
	ColorFound    = color.NRGBA{R: 56, G: 142, B: 60, A: 255}  // green
	ColorMissing  = color.NRGBA{R: 211, G: 47, B: 47, A: 255}  // red
	ColorExcluded = color.NRGBA{R: 245, G: 124, B: 0, A: 255}  // orange
	ColorDisabled = color.NRGBA{R: 25, G: 118, B: 210, A: 255} // blue
)

// StatusColor returns the display color of a word state.
func StatusColor(s model.Status) color.NRGBA {
	switch s {
	case model.StatusFound:
		return ColorFound
	case model.StatusExcluded:
		return ColorExcluded
	case model.StatusDisabled:
		return ColorDisabled
	default:
		return ColorMissing
	}
}

// Cell addresses one grid cell, columns counted from the left.
type Cell struct {
	Row int
	Col int
}

// LitCells returns the cells covered by found placements. Placement
// columns count from the right edge, so they are mirrored back here.
func LitCells(placements []model.Placement, cols int) map[Cell]bool {
	lit := map[Cell]bool{}
	for _, p := range placements {
		if !p.Found() {
			continue
		}
		for c := cols - 1 - p.End; c <= cols-1-p.Start; c++ {
			lit[Cell{Row: p.Row, Col: c}] = true
		}
	}
	return lit
}
