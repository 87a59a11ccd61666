package divider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

func TestBuild_Defaults(t *testing.T) {
	g, err := Build(DefaultSettings())
	require.NoError(t, err)

	assert.InDelta(t, 89.6, g.StripHeight, 1e-9)
	assert.InDelta(t, 44.8, g.SlotHeight, 1e-9)
	assert.InDelta(t, 22.4, g.SlotBottom, 1e-9)
	assert.InDelta(t, 67.2, g.SlotTop, 1e-9)
	assert.InDelta(t, 28.0837, g.FirstSlot, 1e-9)
	require.Len(t, g.Slots, 12)
	require.Len(t, g.CenterLine, 13)

	w, h := g.Slots[0].Size()
	assert.InDelta(t, 0.3, w, 1e-9)
	assert.InDelta(t, 44.8, h, 1e-9)

	last := g.CenterLine[len(g.CenterLine)-1]
	assert.InDelta(t, 239.5, last.To.X, 1e-9)
	assert.InDelta(t, 0, g.CenterLine[0].From.X, 1e-9)
}

func TestBuild_HorizontalOffset(t *testing.T) {
	s := DefaultSettings()
	s.Orientation = Horizontal
	g, err := Build(s)
	require.NoError(t, err)
	assert.InDelta(t, 36.417, g.FirstSlot, 1e-9)

	for i := 1; i < len(g.SlotCenters); i++ {
		assert.InDelta(t, s.Pitch, g.SlotCenters[i]-g.SlotCenters[i-1], 1e-3)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero length", func(s *Settings) { s.Length = 0 }},
		{"negative height", func(s *Settings) { s.Height = -1 }},
		{"slot too narrow", func(s *Settings) { s.SlotWidth = 0.05 }},
		{"slot too wide", func(s *Settings) { s.SlotWidth = 16 }},
		{"no slots", func(s *Settings) { s.Count = 0 }},
		{"too many slots", func(s *Settings) { s.Count = 25 }},
		{"offset above pitch", func(s *Settings) { s.Offset = 20 }},
		{"negative offset", func(s *Settings) { s.Offset = -1 }},
		{"slots off the strip", func(s *Settings) { s.Length = 150 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.modify(&s)
			assert.ErrorIs(t, s.Validate(), model.ErrInvalidInput)
			_, err := Build(s)
			assert.Error(t, err)
		})
	}
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("Waagerecht")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, o)

	o, err = ParseOrientation("")
	require.NoError(t, err)
	assert.Equal(t, Vertical, o)

	_, err = ParseOrientation("diagonal")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestEstimateFace(t *testing.T) {
	g, err := Build(DefaultSettings())
	require.NoError(t, err)

	est := EstimateFace(10, 11, g, 600, 400, 0.2)
	assert.Equal(t, 11, est.Horizontal)
	assert.Equal(t, 12, est.Vertical)
	assert.Equal(t, 23, est.Strips)
	// 2 along x 4 across = 8 per sheet
	assert.Equal(t, 8, est.StripsPerSheet)
	assert.Equal(t, 3, est.Sheets)
	assert.True(t, est.WastePercent > 0 && est.WastePercent < 100)

	expected := 23 * 239.5 * 89.6
	if math.Abs(est.StripArea-expected) > 0.1 {
		t.Errorf("expected strip area %.1f, got %.1f", expected, est.StripArea)
	}
}

func TestEstimateFace_ZeroSheet(t *testing.T) {
	g, err := Build(DefaultSettings())
	require.NoError(t, err)

	est := EstimateFace(10, 11, g, 0, 0, 0)
	assert.Equal(t, 0, est.Sheets)
	assert.Equal(t, 23, est.Strips)
}
