package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/divider"
)

// DXF layer names of the divider drawing.
const (
	LayerContour    = "Kontur"
	LayerCenterLine = "Mittellinie"
	LayerSlots      = "Schlitze"
)

// WriteDividerDXF writes one divider strip: the outer contour, the centre
// line between the slots and one closed rectangle per slot.
func WriteDividerDXF(path string, g divider.Geometry) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer(LayerContour, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerContour, err)
	}
	if err := polyline(d, g.Outline); err != nil {
		return err
	}

	if _, err := d.AddLayer(LayerCenterLine, color.Green, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerCenterLine, err)
	}
	for _, s := range g.CenterLine {
		if s.To.X-s.From.X <= 0 {
			continue
		}
		if _, err := d.Line(s.From.X, s.From.Y, 0, s.To.X, s.To.Y, 0); err != nil {
			return fmt.Errorf("failed to add centre line: %w", err)
		}
	}

	if _, err := d.AddLayer(LayerSlots, color.Blue, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerSlots, err)
	}
	for _, slot := range g.Slots {
		if err := polyline(d, slot); err != nil {
			return err
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF file: %w", err)
	}
	return nil
}
