package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/divider"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// rgb is a fill or text color.
type rgb struct {
	R, G, B int
}

// statusColors mirrors the word list colors of the editor.
var statusColors = map[model.Status]rgb{
	model.StatusFound:    {R: 76, G: 175, B: 80},  // green
	model.StatusMissing:  {R: 244, G: 67, B: 54},  // red
	model.StatusExcluded: {R: 255, G: 152, B: 0},  // orange
	model.StatusDisabled: {R: 33, G: 150, B: 243}, // blue
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// SheetData is what a face sheet shows.
type SheetData struct {
	Title      string
	Grid       *model.Grid
	Face       Face
	States     []model.WordState
	Placements []model.Placement
}

// WriteSheetPDF renders the face to scale with the word table and a QR code
// of the placements.
func WriteSheetPDF(path string, data SheetData) error {
	if data.Grid == nil {
		return fmt.Errorf("no grid to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, tr(data.Title), "", 0, "L", false, 0, "")

	faceBottom := renderFace(pdf, data, tr)
	if err := renderQR(pdf, data.Placements, pageWidth-marginRight-qrSize, marginTop); err != nil {
		return err
	}
	renderWordTable(pdf, data.States, data.Placements, faceBottom+8, tr)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Wortuhr Scriptmaker", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderFace draws the frame, letters and minute dots scaled into the upper
// half of the page. It returns the y coordinate below the drawing.
func renderFace(pdf *fpdf.Fpdf, data SheetData, tr func(string) string) float64 {
	fw, fh := data.Face.Frame.Size()
	if fw <= 0 || fh <= 0 {
		return drawAreaTop
	}
	drawWidth := pageWidth - marginLeft - marginRight - qrSize - 5
	scale := math.Min(drawWidth/fw, 120/fh)
	canvasW, canvasH := fw*scale, fh*scale
	offsetX := marginLeft
	offsetY := drawAreaTop

	// DXF y grows upwards, PDF y downwards
	toPage := func(p model.Point2D) (float64, float64) {
		return offsetX + p.X*scale, offsetY + (fh-p.Y)*scale
	}

	pdf.SetDrawColor(100, 100, 100)
	pdf.SetFillColor(30, 30, 30)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	selected := data.Grid.SelectionMask()
	for _, l := range data.Face.Letters {
		pdf.SetFont("Helvetica", "B", l.Height*scale*2.83)
		if selected[l.Row][l.Col] {
			pdf.SetTextColor(255, 214, 0)
		} else {
			pdf.SetTextColor(220, 220, 220)
		}
		x, y := toPage(l.Center)
		text := tr(l.Text)
		w := pdf.GetStringWidth(text)
		pdf.SetXY(x-w/2, y-2)
		pdf.CellFormat(w, 4, text, "", 0, "C", false, 0, "")
	}

	pdf.SetDrawColor(200, 200, 200)
	for _, d := range data.Face.Dots {
		x, y := toPage(d.Center)
		pdf.Circle(x, y, d.Radius*scale, "D")
	}

	pdf.SetTextColor(0, 0, 0)
	drawDimension(pdf, fmt.Sprintf("%.0f mm", fw), offsetX, offsetY+canvasH+1, canvasW)
	return offsetY + canvasH + 6
}

// renderWordTable lists every layout word with its status and first position.
func renderWordTable(pdf *fpdf.Fpdf, states []model.WordState, placements []model.Placement, y float64, tr func(string) string) {
	colWidths := []float64{12, 30, 35, 28, 20, 20, 20}
	headers := []string{"#", "Word", "Identifier", "Status", "Row", "Start", "End"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 5, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 5

	pdf.SetFont("Helvetica", "", 8)
	for _, st := range states {
		if y > pageHeight-marginBottom-8 {
			pdf.AddPage()
			y = marginTop
		}
		front, _ := st.Word.ID.FrontWord()
		row, start, end := "-", "-", "-"
		for _, p := range placements {
			if p.Index == st.Index && p.Found() {
				row, start, end = fmt.Sprint(p.Row), fmt.Sprint(p.Start), fmt.Sprint(p.End)
				break
			}
		}
		cells := []string{fmt.Sprint(st.Index), tr(st.Word.Text), front, st.Status.String(), row, start, end}

		col := statusColors[st.Status]
		xPos = marginLeft
		for j, cell := range cells {
			pdf.SetXY(xPos, y)
			if j == 3 {
				pdf.SetFillColor(col.R, col.G, col.B)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}
			pdf.CellFormat(colWidths[j], 5, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 5
	}
}

// WriteDividerPDF renders a dimensioned preview of one divider strip on an
// A4 landscape page.
func WriteDividerPDF(path string, g divider.Geometry) error {
	s := g.Settings
	if s.Length <= 0 || g.StripHeight <= 0 {
		return fmt.Errorf("no divider geometry to export")
	}

	const (
		lw = 297.0
		lh = 210.0
	)
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Divider %s: %.2f x %.2f mm, %d slots", s.Orientation, s.Length, g.StripHeight, s.Count)
	pdf.CellFormat(lw-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	drawWidth := lw - marginLeft - marginRight - 20
	drawHeight := lh - drawAreaTop - marginBottom - 30
	scale := math.Min(drawWidth/s.Length, drawHeight/g.StripHeight)
	offsetX := marginLeft + 20
	offsetY := drawAreaTop + 10
	canvasW, canvasH := s.Length*scale, g.StripHeight*scale
	toPage := func(p model.Point2D) (float64, float64) {
		return offsetX + p.X*scale, offsetY + (g.StripHeight-p.Y)*scale
	}

	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	pdf.SetDrawColor(0, 120, 0)
	pdf.SetLineWidth(0.15)
	pdf.SetDashPattern([]float64{1.5, 1}, 0)
	for _, seg := range g.CenterLine {
		x1, y1 := toPage(seg.From)
		x2, y2 := toPage(seg.To)
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetFillColor(33, 150, 243)
	pdf.SetDrawColor(0, 0, 120)
	for _, slot := range g.Slots {
		min, max := slot.BoundingBox()
		x, y := toPage(model.Point2D{X: min.X, Y: max.Y})
		pdf.Rect(x, y, math.Max((max.X-min.X)*scale, 0.2), (max.Y-min.Y)*scale, "FD")
	}

	pdf.SetTextColor(80, 80, 80)
	drawDimension(pdf, fmt.Sprintf("%.2f mm", s.Length), offsetX, offsetY+canvasH+1, canvasW)
	drawVerticalDimension(pdf, fmt.Sprintf("%.2f mm", g.StripHeight), offsetX, offsetY, canvasH)
	if len(g.SlotCenters) > 0 {
		first := g.SlotCenters[0]
		drawDimension(pdf, fmt.Sprintf("%.4f", first), offsetX, offsetY-5, first*scale)
	}
	if len(g.SlotCenters) > 1 {
		x := offsetX + g.SlotCenters[0]*scale
		drawDimension(pdf, fmt.Sprintf("%.4f", s.Pitch), x, offsetY-5, s.Pitch*scale)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	y := offsetY + canvasH + 10
	items := []struct {
		label string
		value string
	}{
		{"Slot width", fmt.Sprintf("%.2f mm", s.SlotWidth)},
		{"Slot height", fmt.Sprintf("%.2f mm (%.2f to %.2f)", g.SlotHeight, g.SlotBottom, g.SlotTop)},
		{"Slot pitch", fmt.Sprintf("%.4f mm", s.Pitch)},
		{"First slot centre", fmt.Sprintf("%.4f mm", g.FirstSlot)},
		{"Offset", fmt.Sprintf("%.4f mm", s.Offset)},
	}
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(40, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	return pdf.OutputFileAndClose(path)
}

// drawDimension writes a label centred over a horizontal span with tick marks.
func drawDimension(pdf *fpdf.Fpdf, label string, x, y, w float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(80, 80, 80)
	pdf.SetLineWidth(0.1)
	pdf.Line(x, y+4.5, x+w, y+4.5)
	pdf.Line(x, y+3.5, x, y+5.5)
	pdf.Line(x+w, y+3.5, x+w, y+5.5)
	labelW := pdf.GetStringWidth(label)
	pdf.SetXY(x+(w-labelW)/2, y)
	pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
}

// drawVerticalDimension writes a rotated label to the left of a vertical span.
func drawVerticalDimension(pdf *fpdf.Fpdf, label string, x, y, h float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.TransformBegin()
	pdf.TransformRotate(90, x-3, y+h/2)
	labelW := pdf.GetStringWidth(label)
	pdf.SetXY(x-3-labelW/2, y+h/2-2)
	pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	pdf.TransformEnd()
}
