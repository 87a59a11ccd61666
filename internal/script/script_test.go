package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/resolver"
)

var germanFace = []string{
	"ESKISTAFÜNF",
	"ZEHNZWANZIG",
	"DREIVIERTEL",
	"VORFUNKNACH",
	"HALBAELFÜNF",
	"EINSXAMZWEI",
	"DREIPMJVIER",
	"SECHSNLACHT",
	"SIEBENZWÖLF",
	"ZEHNEUNKUHR",
}

func resolveFace(t *testing.T, opts model.Options) (*model.Grid, model.Layout, []model.Placement) {
	t.Helper()
	g, err := model.GridFromRows(germanFace)
	require.NoError(t, err)
	layout := model.ClockLayout(g.Rows(), g.Cols())
	ps, err := resolver.Resolve(g, layout)
	require.NoError(t, err)
	return g, layout, ps
}

func TestHeader_ClockFace(t *testing.T) {
	g, layout, ps := resolveFace(t, model.Options{})
	out := Header(g, layout, ps, model.Options{})

	assert.True(t, strings.HasPrefix(out, "#pragma once\n\n#include \"Uhrtype.hpp\""))
	assert.Contains(t, out, "class De10x11_t : public iUhrType {")
	assert.Contains(t, out, "De10x11_t _de10x11;")
	assert.Contains(t, out, "hasZwanzig() override { return true; }")

	assert.Contains(t, out, "case FrontWord::es_ist:\n            setFrontMatrixWord(0, 9, 10);\n            setFrontMatrixWord(0, 5, 7);")
	assert.Contains(t, out, "case FrontWord::dreiviertel:\n            setFrontMatrixWord(2, 0, 10);")
	assert.Contains(t, out, "case FrontWord::min_5:\n            setFrontMatrixWord(0, 0, 3);")
	assert.Contains(t, out, "case FrontWord::hour_5:\n            setFrontMatrixWord(4, 0, 3);")
	assert.Contains(t, out, "case FrontWord::hour_10:\n            setFrontMatrixWord(9, 7, 10);")
	assert.Contains(t, out, "case FrontWord::vor:\n        case FrontWord::v_vor:\n")
	assert.Contains(t, out, "case FrontWord::funk:\n            setFrontMatrixWord(3, 4, 7);\n            setFrontMatrixWord(8, 5, 10);")
	assert.Equal(t, 1, strings.Count(out, "case FrontWord::viertel:"))
	assert.NotContains(t, out, "case FrontWord::es:")
}

func TestHeader_EsIstSkipsFiller(t *testing.T) {
	g, layout, ps := resolveFace(t, model.Options{})
	out := Header(g, layout, ps, model.Options{})

	// K sits between ES and IST at right-to-left column 8 and must stay dark.
	assert.NotContains(t, out, "setFrontMatrixWord(0, 5, 10);")
	assert.NotContains(t, out, "setFrontMatrixWord(0, 5, 8);")
	assert.NotContains(t, out, "setFrontMatrixWord(0, 8, 10);")
}

func TestHeader_OptionsDropWords(t *testing.T) {
	opts := model.Options{NoZwanzig: true, NoDreiviertel: true}
	g, layout, ps := resolveFace(t, opts)
	out := Header(g, layout, ps, opts)

	assert.NotContains(t, out, "FrontWord::min_20")
	assert.NotContains(t, out, "FrontWord::dreiviertel")
	assert.Contains(t, out, "hasZwanzig() override { return false; }")
	assert.Contains(t, out, "hasDreiviertel() override { return false; }")
}

func TestHeader_DreiviertelOnTwoRows(t *testing.T) {
	g, err := model.GridFromRows([]string{"DREIXXX", "VIERTEL"})
	require.NoError(t, err)
	layout := model.Layout{Words: []model.TargetWord{
		model.NewTargetWord(model.WordDreiviertel, "DREI", model.AllRows),
		model.NewTargetWord(model.WordViertel, "VIERTEL", model.AllRows),
	}}
	ps, err := resolver.Resolve(g, layout)
	require.NoError(t, err)

	out := Header(g, layout, ps, model.Options{})
	assert.Contains(t, out, "case FrontWord::dreiviertel:\n            setFrontMatrixWord(0, 3, 6);\n            setFrontMatrixWord(1, 0, 6);")
}

func TestHeader_GridComment(t *testing.T) {
	g, layout, ps := resolveFace(t, model.Options{})
	out := Header(g, layout, ps, model.Options{})

	assert.Contains(t, out, " 10  9  8  7  6  5  4  3  2  1  0")
	assert.Contains(t, out, " *   0 |  E  S  K  I  S  T  A  F  Ü  N  F")
}

func TestCheck(t *testing.T) {
	g, err := model.GridFromRows([]string{"ESKISTAFÜNF"})
	require.NoError(t, err)
	layout := model.ClockLayout(1, 11)
	ps, err := resolver.Resolve(g, layout)
	require.NoError(t, err)

	states := resolver.Summarize(layout, ps, model.Options{})
	warnings := Check(states)
	assert.NotEmpty(t, warnings)
	for _, w := range warnings {
		assert.NotContains(t, w, `"ES"`)
	}

	_, layout, ps = resolveFace(t, model.Options{})
	assert.Empty(t, Check(resolver.Summarize(layout, ps, model.Options{})))
}

func TestIconHeader(t *testing.T) {
	g, err := model.GridFromRows(germanFace)
	require.NoError(t, err)
	require.NoError(t, g.SetSelected(0, 0, true))
	require.NoError(t, g.SetSelected(0, 1, true))

	out, err := IconHeader(g, 7)
	require.NoError(t, err)

	assert.Contains(t, out, "#define GRAFIK_11X10_ROWS 10")
	assert.Contains(t, out, "const uint16_t grafik_11x10[][11] PROGMEM = {")
	assert.Contains(t, out, "{0b00000000011,")
	assert.Contains(t, out, "E S . . . . . . . . .")
	// 7 face copies plus the four built-in icons
	assert.Equal(t, 11, strings.Count(out, "{0b"))
	assert.Contains(t, out, "{0b00110001100,")
	assert.Contains(t, out, " 0b01101110110,")
	assert.Contains(t, out, " 0b11011011011,")
	assert.True(t, strings.HasSuffix(out, "};\n"))
}

func TestIconHeader_TallGridKeepsRows(t *testing.T) {
	g, err := model.NewGrid(12, 4)
	require.NoError(t, err)

	out, err := IconHeader(g, 1)
	require.NoError(t, err)
	assert.Contains(t, out, "const uint16_t grafik_4x12[][12] PROGMEM = {")
	assert.Equal(t, 1, strings.Count(out, "{0b"))
}

func TestIconHeader_TooWide(t *testing.T) {
	g, err := model.NewGrid(2, 17)
	require.NoError(t, err)
	_, err = IconHeader(g, 1)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestIconFromGrid(t *testing.T) {
	g, err := model.GridFromRows([]string{"ABC"})
	require.NoError(t, err)
	require.NoError(t, g.SetSelected(0, 2, true))

	icon := IconFromGrid("x", g)
	assert.Equal(t, []string{"100"}, icon.Rows)
}
