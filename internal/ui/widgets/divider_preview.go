package widgets

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/divider"
)

var (
	colorStrip      = color.NRGBA{R: 230, G: 210, B: 175, A: 255} // light wood
	colorSlot       = color.NRGBA{R: 211, G: 47, B: 47, A: 230}
	colorCenterLine = color.NRGBA{R: 30, G: 120, B: 255, A: 200}
)

// DividerPreview draws one divider strip with its slots and centre line.
type DividerPreview struct {
	widget.BaseWidget
	geometry  divider.Geometry
	maxWidth  float32
	maxHeight float32
}

// NewDividerPreview creates a preview that fits in maxW x maxH.
func NewDividerPreview(g divider.Geometry, maxW, maxH float32) *DividerPreview {
	dp := &DividerPreview{
		geometry:  g,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	dp.ExtendBaseWidget(dp)
	return dp
}

// SetGeometry replaces the strip and redraws.
func (dp *DividerPreview) SetGeometry(g divider.Geometry) {
	dp.geometry = g
	dp.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (dp *DividerPreview) CreateRenderer() fyne.WidgetRenderer {
	r := &dividerPreviewRenderer{dp: dp}
	r.rebuild()
	return r
}

type dividerPreviewRenderer struct {
	dp      *DividerPreview
	objects []fyne.CanvasObject
}

const previewMargin = float32(10)

func (r *dividerPreviewRenderer) scale() float32 {
	g := r.dp.geometry
	if g.Settings.Length <= 0 || g.StripHeight <= 0 {
		return 0
	}
	scaleX := (r.dp.maxWidth - previewMargin*2) / float32(g.Settings.Length)
	scaleY := (r.dp.maxHeight - previewMargin*2) / float32(g.StripHeight)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	return scale
}

func (r *dividerPreviewRenderer) rebuild() {
	r.objects = nil
	g := r.dp.geometry
	scale := r.scale()
	if scale <= 0 {
		return
	}
	h := float32(g.StripHeight) * scale
	toCanvas := func(x, y float64) fyne.Position {
		return fyne.NewPos(previewMargin+float32(x)*scale, previewMargin+h-float32(y)*scale)
	}

	strip := canvas.NewRectangle(colorStrip)
	strip.StrokeColor = colorOutline
	strip.StrokeWidth = 1.5
	strip.Resize(fyne.NewSize(float32(g.Settings.Length)*scale, h))
	strip.Move(fyne.NewPos(previewMargin, previewMargin))
	r.objects = append(r.objects, strip)

	for _, seg := range g.CenterLine {
		r.drawDashed(toCanvas(seg.From.X, seg.From.Y), toCanvas(seg.To.X, seg.To.Y))
	}

	for _, slot := range g.Slots {
		lo, hi := slot.BoundingBox()
		topLeft := toCanvas(lo.X, hi.Y)
		w := float32(hi.X-lo.X) * scale
		if w < 1 {
			w = 1
		}
		rect := canvas.NewRectangle(colorSlot)
		rect.Resize(fyne.NewSize(w, float32(hi.Y-lo.Y)*scale))
		rect.Move(topLeft)
		r.objects = append(r.objects, rect)
	}

	label := canvas.NewText(fmt.Sprintf("%s, first slot %.4f mm", g.Settings.Orientation, g.FirstSlot), colorOutline)
	label.TextSize = 10
	label.Move(fyne.NewPos(previewMargin, previewMargin+h+2))
	r.objects = append(r.objects, label)
}

// drawDashed draws the centre line as short dashes.
func (r *dividerPreviewRenderer) drawDashed(from, to fyne.Position) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.5 {
		return
	}
	dashLen := float32(6)
	gapLen := float32(4)
	nx := dx / length
	ny := dy / length
	for cursor := float32(0); cursor < length; cursor += dashLen + gapLen {
		end := cursor + dashLen
		if end > length {
			end = length
		}
		line := canvas.NewLine(colorCenterLine)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(from.X+nx*cursor, from.Y+ny*cursor)
		line.Position2 = fyne.NewPos(from.X+nx*end, from.Y+ny*end)
		r.objects = append(r.objects, line)
	}
}

func (r *dividerPreviewRenderer) Layout(size fyne.Size)        {}
func (r *dividerPreviewRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.dp) }
func (r *dividerPreviewRenderer) Destroy()                     {}
func (r *dividerPreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *dividerPreviewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.dp.maxWidth, r.dp.maxHeight+14)
}
