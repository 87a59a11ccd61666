package divider

import "math"

// Estimate holds how many strips a face needs and how many stock sheets
// they take.
type Estimate struct {
	Horizontal     int     `json:"horizontal"`       // strips between rows, edges included
	Vertical       int     `json:"vertical"`         // strips between columns, edges included
	Strips         int     `json:"strips"`           // total strips
	StripArea      float64 `json:"strip_area"`       // area of all strips (sq mm)
	SheetArea      float64 `json:"sheet_area"`       // area of one sheet (sq mm)
	StripsPerSheet int     `json:"strips_per_sheet"` // strips that fit on one sheet with kerf
	Sheets         int     `json:"sheets"`           // sheets to cut
	WastePercent   float64 `json:"waste_percent"`    // unused sheet area
	KerfWidth      float64 `json:"kerf_width"`
}

// EstimateFace computes the strips for a rows x cols face cut from sheets
// of sheetW x sheetH with the given kerf.
func EstimateFace(rows, cols int, g Geometry, sheetW, sheetH, kerf float64) Estimate {
	est := Estimate{
		Horizontal: rows + 1,
		Vertical:   cols + 1,
		KerfWidth:  kerf,
	}
	est.Strips = est.Horizontal + est.Vertical
	est.StripArea = float64(est.Strips) * g.Settings.Length * g.StripHeight

	est.SheetArea = sheetW * sheetH
	if est.SheetArea <= 0 || g.Settings.Length <= 0 || g.StripHeight <= 0 {
		return est
	}

	along := int(math.Floor((sheetW + kerf) / (g.Settings.Length + kerf)))
	across := int(math.Floor((sheetH + kerf) / (g.StripHeight + kerf)))
	// Strips may also be laid out rotated on the sheet
	alongR := int(math.Floor((sheetH + kerf) / (g.Settings.Length + kerf)))
	acrossR := int(math.Floor((sheetW + kerf) / (g.StripHeight + kerf)))
	est.StripsPerSheet = max(along*across, alongR*acrossR)
	if est.StripsPerSheet == 0 {
		return est
	}

	est.Sheets = int(math.Ceil(float64(est.Strips) / float64(est.StripsPerSheet)))
	used := est.StripArea / (float64(est.Sheets) * est.SheetArea)
	est.WastePercent = (1 - used) * 100
	return est
}
