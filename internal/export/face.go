// Package export writes laser drawings, printable sheets and reports for a
// letter face and its divider strips.
package export

import (
	"fmt"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// DXF layer names of the face drawing.
const (
	LayerFrame   = "Rahmen"
	LayerLetters = "Buchstaben"
	LayerMinutes = "Minuten"
)

const umlauts = "ÄÖÜ"

// Letter is one engraved character of the face in mm, origin at the lower
// left corner of the frame.
type Letter struct {
	Row    int           `json:"row"`
	Col    int           `json:"col"`
	Text   string        `json:"text"`
	Center model.Point2D `json:"center"` // centre of the glyph box
	Insert model.Point2D `json:"insert"` // lower left corner of the glyph box
	Height float64       `json:"height"`
	Width  float64       `json:"width"`
}

// Dot is one minute LED hole.
type Dot struct {
	Center model.Point2D `json:"center"`
	Radius float64       `json:"radius"`
}

// Face is the laser geometry of a letter face.
type Face struct {
	Frame   model.Outline `json:"frame"`
	Letters []Letter      `json:"letters"`
	Dots    []Dot         `json:"dots"`
}

// FaceLayout places every non-blank cell on a pitch grid centred on the
// frame. Umlauts are drawn smaller and lowered by half the height they
// lose so their dots stay inside the cell.
func FaceLayout(grid *model.Grid, s model.FaceSettings, opts model.Options) Face {
	rows, cols := grid.Rows(), grid.Cols()
	mid := s.FrameSize / 2
	x0 := mid - float64(cols-1)/2*s.Pitch
	y0 := mid + float64(rows-1)/2*s.Pitch

	face := Face{Frame: model.Rect(0, 0, s.FrameSize, s.FrameSize)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			text, _ := grid.Cell(r, c)
			if text == model.Blank {
				continue
			}
			h := s.TextHeight
			w := h * s.CharWidth
			center := model.Point2D{X: x0 + float64(c)*s.Pitch, Y: y0 - float64(r)*s.Pitch}
			if strings.Contains(umlauts, text) {
				nh := h * s.UmlautScale
				center.Y -= (h - nh) / 2
				h = nh
				w = nh * s.CharWidth * s.UmlautWidth
			}
			face.Letters = append(face.Letters, Letter{
				Row:    r,
				Col:    c,
				Text:   text,
				Center: center,
				Insert: model.Point2D{X: center.X - w/2, Y: center.Y - h/2},
				Height: h,
				Width:  w,
			})
		}
	}

	if opts.NoMinuteDots || s.DotCount < 1 {
		return face
	}
	radius := s.Pitch / s.DotRadiusDiv
	y := mid - (float64(rows-1)/2+1)*s.Pitch
	for i := 0; i < s.DotCount; i++ {
		x := mid + (float64(i)-float64(s.DotCount-1)/2)*s.DotSpacing*s.Pitch
		face.Dots = append(face.Dots, Dot{Center: model.Point2D{X: x, Y: y}, Radius: radius})
	}
	return face
}

// EmptyCells lists the blank cells as "row,col" so callers can warn before
// exporting an incomplete face.
func EmptyCells(grid *model.Grid) []string {
	var out []string
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if grid.IsBlank(r, c) {
				out = append(out, fmt.Sprintf("%d,%d", r, c))
			}
		}
	}
	return out
}

// WriteFaceDXF writes the face as a DXF drawing with frame, letter and
// minute layers.
func WriteFaceDXF(path string, face Face) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer(LayerFrame, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerFrame, err)
	}
	if err := polyline(d, face.Frame); err != nil {
		return err
	}

	if _, err := d.AddLayer(LayerLetters, color.White, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerLetters, err)
	}
	for _, l := range face.Letters {
		if _, err := d.Text(l.Text, l.Insert.X, l.Insert.Y, 0, l.Height); err != nil {
			return fmt.Errorf("failed to add letter %q at %d,%d: %w", l.Text, l.Row, l.Col, err)
		}
	}

	if len(face.Dots) > 0 {
		if _, err := d.AddLayer(LayerMinutes, color.Blue, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", LayerMinutes, err)
		}
		for _, dot := range face.Dots {
			if _, err := d.Circle(dot.Center.X, dot.Center.Y, 0, dot.Radius); err != nil {
				return fmt.Errorf("failed to add minute dot: %w", err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF file: %w", err)
	}
	return nil
}

// polyline adds a closed LWPOLYLINE on the current layer.
func polyline(d *drawing.Drawing, o model.Outline) error {
	vertices := make([][]float64, len(o))
	for i, p := range o {
		vertices[i] = []float64{p.X, p.Y}
	}
	if _, err := d.LwPolyline(true, vertices...); err != nil {
		return fmt.Errorf("failed to add polyline: %w", err)
	}
	return nil
}
