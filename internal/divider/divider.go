// Package divider computes the slotted divider strips that separate the
// letters behind the face.
package divider

import (
	"fmt"
	"math"
	"strings"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// Orientation selects the strip direction. Horizontal strips have their
// slots shifted by Offset so they interlock with the vertical ones.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation accepts the English and German names.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical", "senkrecht", "v":
		return Vertical, nil
	case "horizontal", "waagerecht", "h":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("%w: unknown orientation %q", model.ErrInvalidInput, s)
	}
}

// Limits for user input.
const (
	MinSlotWidth = 0.1
	MaxSlots     = 24
)

// Settings describe one divider strip in mm.
type Settings struct {
	Length      float64     `json:"length"`
	Height      float64     `json:"height"` // half the strip height, as entered
	SlotWidth   float64     `json:"slot_width"`
	Pitch       float64     `json:"pitch"`  // SCHLITZABSTAND
	Count       int         `json:"count"`  // ANZAHL_SCHLITZE
	Offset      float64     `json:"offset"` // VERSCHIEBUNG
	Orientation Orientation `json:"orientation"`
}

// DefaultSettings returns the strip for the 250 mm face.
func DefaultSettings() Settings {
	return Settings{
		Length:    239.5,
		Height:    44.8,
		SlotWidth: 0.3,
		Pitch:     16.6666,
		Count:     12,
		Offset:    8.3333,
	}
}

// Validate reports every problem with the settings in one error.
func (s Settings) Validate() error {
	var problems []string
	if s.Length <= 0 {
		problems = append(problems, "length must be greater than 0")
	}
	if s.Height <= 0 {
		problems = append(problems, "height must be greater than 0")
	}
	if s.Pitch <= 0 {
		problems = append(problems, "slot pitch must be greater than 0")
	}
	if s.SlotWidth < MinSlotWidth {
		problems = append(problems, fmt.Sprintf("slot width must be at least %.1f", MinSlotWidth))
	}
	if s.Pitch > 0 && s.SlotWidth > s.Pitch-1 {
		problems = append(problems, fmt.Sprintf("slot width must not exceed %.4f (pitch - 1)", s.Pitch-1))
	}
	if s.Count < 1 || s.Count > MaxSlots {
		problems = append(problems, fmt.Sprintf("slot count must be between 1 and %d", MaxSlots))
	}
	if s.Offset < 0 {
		problems = append(problems, "offset must not be negative")
	}
	if s.Pitch > 0 && s.Offset > s.Pitch {
		problems = append(problems, "offset must not exceed the slot pitch")
	}
	if len(problems) == 0 {
		first := s.firstSlot()
		last := first + float64(s.Count-1)*s.Pitch
		if first-s.SlotWidth/2 < 0 || last+s.SlotWidth/2 > s.Length {
			problems = append(problems, "slots do not fit on the strip")
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", model.ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

func (s Settings) firstSlot() float64 {
	x := (s.Length - float64(s.Count-1)*s.Pitch) / 2
	if s.Orientation == Horizontal {
		x += s.Offset
	}
	return round(x, 4)
}

// Segment is a straight line between two points.
type Segment struct {
	From model.Point2D `json:"from"`
	To   model.Point2D `json:"to"`
}

// Geometry is the drawing of one strip with the origin at its lower left corner.
type Geometry struct {
	Settings    Settings        `json:"settings"`
	StripHeight float64         `json:"strip_height"`
	SlotHeight  float64         `json:"slot_height"`
	SlotBottom  float64         `json:"slot_bottom"`
	SlotTop     float64         `json:"slot_top"`
	FirstSlot   float64         `json:"first_slot"` // centre of the first slot
	SlotCenters []float64       `json:"slot_centers"`
	Outline     model.Outline   `json:"outline"`
	Slots       []model.Outline `json:"slots"`
	CenterLine  []Segment       `json:"center_line"`
}

// Build validates the settings and computes the strip geometry.
func Build(s Settings) (Geometry, error) {
	if err := s.Validate(); err != nil {
		return Geometry{}, err
	}

	h := s.Height * 2
	slotH := round(h/2, 2)
	bottom := round((h-slotH)/2, 2)
	g := Geometry{
		Settings:    s,
		StripHeight: h,
		SlotHeight:  slotH,
		SlotBottom:  bottom,
		SlotTop:     bottom + slotH,
		FirstSlot:   s.firstSlot(),
		Outline:     model.Rect(0, 0, s.Length, h),
	}

	half := s.SlotWidth / 2
	mid := h / 2
	x := 0.0
	for i := 0; i < s.Count; i++ {
		cx := round(g.FirstSlot+float64(i)*s.Pitch, 4)
		g.SlotCenters = append(g.SlotCenters, cx)
		g.Slots = append(g.Slots, model.Rect(cx-half, g.SlotBottom, cx+half, g.SlotTop))
		g.CenterLine = append(g.CenterLine, Segment{
			From: model.Point2D{X: x, Y: mid},
			To:   model.Point2D{X: cx - half, Y: mid},
		})
		x = cx + half
	}
	g.CenterLine = append(g.CenterLine, Segment{
		From: model.Point2D{X: x, Y: mid},
		To:   model.Point2D{X: s.Length, Y: mid},
	})
	return g, nil
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
