package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/export"
)

var (
	colorFrame   = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	colorUnlit   = color.NRGBA{R: 110, G: 110, B: 110, A: 255}
	colorLit     = color.NRGBA{R: 255, G: 214, B: 64, A: 255}
	colorDot     = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colorOutline = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
)

// FacePreview renders the laser face to scale with the letters of found
// words lit.
type FacePreview struct {
	widget.BaseWidget
	face      export.Face
	lit       map[Cell]bool
	frameSize float64
	maxSize   float32
}

// NewFacePreview creates a preview that fits in a square of maxSize.
func NewFacePreview(face export.Face, lit map[Cell]bool, frameSize float64, maxSize float32) *FacePreview {
	fp := &FacePreview{
		face:      face,
		lit:       lit,
		frameSize: frameSize,
		maxSize:   maxSize,
	}
	fp.ExtendBaseWidget(fp)
	return fp
}

// SetFace replaces the drawing and redraws.
func (fp *FacePreview) SetFace(face export.Face, lit map[Cell]bool) {
	fp.face = face
	fp.lit = lit
	fp.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (fp *FacePreview) CreateRenderer() fyne.WidgetRenderer {
	r := &facePreviewRenderer{fp: fp}
	r.rebuild()
	return r
}

type facePreviewRenderer struct {
	fp      *FacePreview
	objects []fyne.CanvasObject
}

func (r *facePreviewRenderer) scale() float32 {
	if r.fp.frameSize <= 0 {
		return 1
	}
	return r.fp.maxSize / float32(r.fp.frameSize)
}

func (r *facePreviewRenderer) rebuild() {
	r.objects = nil
	fp := r.fp
	scale := r.scale()
	side := float32(fp.frameSize) * scale
	// DXF y grows upwards, the canvas y grows downwards.
	toCanvas := func(x, y float64) fyne.Position {
		return fyne.NewPos(float32(x)*scale, side-float32(y)*scale)
	}

	bg := canvas.NewRectangle(colorFrame)
	bg.Resize(fyne.NewSize(side, side))
	r.objects = append(r.objects, bg)

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = colorOutline
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(side, side))
	r.objects = append(r.objects, border)

	for _, l := range fp.face.Letters {
		col := colorUnlit
		if fp.lit[Cell{Row: l.Row, Col: l.Col}] {
			col = colorLit
		}
		text := canvas.NewText(l.Text, col)
		text.TextStyle = fyne.TextStyle{Bold: true}
		text.TextSize = float32(l.Height) * scale
		size := text.MinSize()
		pos := toCanvas(l.Center.X, l.Center.Y)
		text.Move(fyne.NewPos(pos.X-size.Width/2, pos.Y-size.Height/2))
		r.objects = append(r.objects, text)
	}

	for _, d := range fp.face.Dots {
		rad := float32(d.Radius) * scale
		dot := canvas.NewCircle(colorDot)
		pos := toCanvas(d.Center.X, d.Center.Y)
		dot.Resize(fyne.NewSize(rad*2, rad*2))
		dot.Move(fyne.NewPos(pos.X-rad, pos.Y-rad))
		r.objects = append(r.objects, dot)
	}
}

func (r *facePreviewRenderer) Layout(size fyne.Size)        {}
func (r *facePreviewRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.fp) }
func (r *facePreviewRenderer) Destroy()                     {}
func (r *facePreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *facePreviewRenderer) MinSize() fyne.Size {
	side := float32(r.fp.frameSize) * r.scale()
	return fyne.NewSize(side, side)
}
