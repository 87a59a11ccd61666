package model

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min, max = o[0], o[0]
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Size returns the width and height of the bounding box.
func (o Outline) Size() (w, h float64) {
	min, max := o.BoundingBox()
	return max.X - min.X, max.Y - min.Y
}

// Rect returns the closed outline of an axis-aligned rectangle.
func Rect(x0, y0, x1, y1 float64) Outline {
	return Outline{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// Options are the face variants the user can switch on and off.
type Options struct {
	NoZwanzig     bool `json:"no_zwanzig" mapstructure:"no_zwanzig"`         // face has no ZWANZIG word
	NoDreiviertel bool `json:"no_dreiviertel" mapstructure:"no_dreiviertel"` // face has no DREIVIERTEL
	NoMinuteDots  bool `json:"no_minute_dots" mapstructure:"no_minute_dots"` // omit the four minute LEDs
}

// FaceSettings holds the laser geometry of the letter face in mm.
type FaceSettings struct {
	FrameSize     float64 `json:"frame_size" mapstructure:"frame_size"`
	Pitch         float64 `json:"pitch" mapstructure:"pitch"`
	TextHeight    float64 `json:"text_height" mapstructure:"text_height"`
	UmlautScale   float64 `json:"umlaut_scale" mapstructure:"umlaut_scale"`       // height factor for Ä Ö Ü
	UmlautWidth   float64 `json:"umlaut_width" mapstructure:"umlaut_width"`       // width factor for Ä Ö Ü
	CharWidth     float64 `json:"char_width" mapstructure:"char_width"`           // glyph width as a fraction of text height
	DotCount      int     `json:"dot_count" mapstructure:"dot_count"`             // minute dots
	DotRadiusDiv  float64 `json:"dot_radius_div" mapstructure:"dot_radius_div"`   // dot radius = pitch / DotRadiusDiv
	DotSpacing    float64 `json:"dot_spacing" mapstructure:"dot_spacing"`       // dot spacing in pitches
}

// DefaultFaceSettings returns the 250 mm frame used for the 11x10 face.
func DefaultFaceSettings() FaceSettings {
	return FaceSettings{
		FrameSize:     250,
		Pitch:         16.6666,
		TextHeight:    11.55,
		UmlautScale:   0.8571,
		UmlautWidth:   1.15,
		CharWidth:     0.7,
		DotCount:      4,
		DotRadiusDiv:  8,
		DotSpacing:    2,
	}
}
