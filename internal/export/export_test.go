package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/divider"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/importer"
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

func faceGrid(t *testing.T) *model.Grid {
	t.Helper()
	g, err := model.GridFromRows(germanFace)
	require.NoError(t, err)
	return g
}

func TestFaceLayout_Positions(t *testing.T) {
	s := model.DefaultFaceSettings()
	face := FaceLayout(faceGrid(t), s, model.Options{})

	require.Len(t, face.Letters, 110)
	require.Len(t, face.Dots, 4)

	// centre column sits on the frame centre
	first := face.Letters[5]
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 5, first.Col)
	assert.InDelta(t, 125, first.Center.X, 1e-9)
	assert.InDelta(t, 125+4.5*s.Pitch, first.Center.Y, 1e-9)

	last := face.Letters[len(face.Letters)-1]
	assert.InDelta(t, 125+5*s.Pitch, last.Center.X, 1e-9)
	assert.InDelta(t, 125-4.5*s.Pitch, last.Center.Y, 1e-9)

	assert.InDelta(t, 125-3*s.Pitch, face.Dots[0].Center.X, 1e-9)
	assert.InDelta(t, 125+3*s.Pitch, face.Dots[3].Center.X, 1e-9)
	assert.InDelta(t, 125-5.5*s.Pitch, face.Dots[0].Center.Y, 1e-9)
	assert.InDelta(t, s.Pitch/8, face.Dots[0].Radius, 1e-9)

	w, h := face.Frame.Size()
	assert.InDelta(t, 250, w, 1e-9)
	assert.InDelta(t, 250, h, 1e-9)
}

func TestFaceLayout_Umlaut(t *testing.T) {
	s := model.DefaultFaceSettings()
	face := FaceLayout(faceGrid(t), s, model.Options{})

	var plain, umlaut Letter
	for _, l := range face.Letters {
		if l.Row == 0 && l.Col == 7 {
			plain = l // F
		}
		if l.Row == 0 && l.Col == 8 {
			umlaut = l // Ü
		}
	}
	require.Equal(t, "Ü", umlaut.Text)
	assert.InDelta(t, s.TextHeight*s.UmlautScale, umlaut.Height, 1e-9)
	assert.InDelta(t, plain.Center.Y-(s.TextHeight-umlaut.Height)/2, umlaut.Center.Y, 1e-9)
	assert.InDelta(t, umlaut.Height*s.CharWidth*s.UmlautWidth, umlaut.Width, 1e-9)
}

func TestFaceLayout_SkipsBlanksAndDots(t *testing.T) {
	g, err := model.GridFromRows([]string{"A.B"})
	require.NoError(t, err)
	face := FaceLayout(g, model.DefaultFaceSettings(), model.Options{NoMinuteDots: true})

	assert.Len(t, face.Letters, 2)
	assert.Empty(t, face.Dots)
	assert.Equal(t, []string{"0,1"}, EmptyCells(g))
}

func TestWriteFaceDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.dxf")
	face := FaceLayout(faceGrid(t), model.DefaultFaceSettings(), model.Options{})

	require.NoError(t, WriteFaceDXF(path, face))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, LayerFrame)
	assert.Contains(t, content, LayerLetters)
	assert.Contains(t, content, LayerMinutes)
	assert.Contains(t, content, "LWPOLYLINE")
	assert.Contains(t, content, "CIRCLE")
	assert.Contains(t, content, "TEXT")
}

func TestWriteDividerDXF_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steg.dxf")
	g, err := divider.Build(divider.DefaultSettings())
	require.NoError(t, err)

	require.NoError(t, WriteDividerDXF(path, g))

	result := importer.InspectDXF(path)
	require.Empty(t, result.Errors)
	assert.Equal(t, 13, result.Counts["LWPOLYLINE"])
	assert.Equal(t, 13, result.Counts["LINE"])
	require.Len(t, result.Outlines, 13)

	w, h := result.Outlines[0].Size()
	assert.InDelta(t, 239.5, w, 1e-6)
	assert.InDelta(t, 89.6, h, 1e-6)
}

func TestWriteSheetPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.pdf")
	g := faceGrid(t)
	require.NoError(t, g.SetSelected(0, 0, true))
	layout := model.ClockLayout(g.Rows(), g.Cols())
	ps, err := resolver.Resolve(g, layout)
	require.NoError(t, err)

	err = WriteSheetPDF(path, SheetData{
		Title:      "Front 11x10",
		Grid:       g,
		Face:       FaceLayout(g, model.DefaultFaceSettings(), model.Options{}),
		States:     resolver.Summarize(layout, ps, model.Options{}),
		Placements: ps,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestWriteSheetPDF_NoGrid(t *testing.T) {
	err := WriteSheetPDF(filepath.Join(t.TempDir(), "x.pdf"), SheetData{})
	assert.Error(t, err)
}

func TestWriteDividerPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steg.pdf")
	s := divider.DefaultSettings()
	s.Orientation = divider.Horizontal
	g, err := divider.Build(s)
	require.NoError(t, err)

	require.NoError(t, WriteDividerPDF(path, g))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, WriteDividerPDF(path, divider.Geometry{}))
}

func TestCollectQRSpans(t *testing.T) {
	ps := []model.Placement{
		{ID: model.WordEs, Front: "es", Status: model.StatusFound, Row: 0, Start: 9, End: 10},
		{ID: model.WordEs, Front: "es", Status: model.StatusFound, Row: 3, Start: 0, End: 1},
		{ID: model.WordUhr, Front: "uhr", Status: model.StatusMissing, Row: -1, Start: -1, End: -1},
		{ID: model.WordUnmapped, Status: model.StatusFound, Row: 1, Start: 1, End: 2},
	}
	spans := CollectQRSpans(ps)
	require.Len(t, spans, 1)
	assert.Equal(t, QRSpan{Front: "es", Row: 0, Start: 9, End: 10}, spans[0])
}

func TestWritePlacementsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placements.xlsx")
	g := faceGrid(t)
	ps, err := resolver.Resolve(g, model.ClockLayout(g.Rows(), g.Cols()))
	require.NoError(t, err)

	require.NoError(t, WritePlacementsXLSX(path, g, ps))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetPlacements)
	require.NoError(t, err)
	assert.Len(t, rows, len(ps)+1)
	assert.Equal(t, "Identifier", rows[0][2])

	face, err := f.GetRows(SheetFace)
	require.NoError(t, err)
	require.Len(t, face, 10)
	assert.Equal(t, "E", face[0][0])
}

func TestWritePlacementsJSON(t *testing.T) {
	var buf bytes.Buffer
	ps := []model.Placement{{Index: 3, ID: model.WordHour3, Word: "DREI", Front: "hour_3", Status: model.StatusFound, Row: 6, Start: 7, End: 10}}
	require.NoError(t, WritePlacementsJSON(&buf, ps))

	assert.True(t, strings.Contains(buf.String(), `"status": "found"`))
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "hour_3", decoded[0]["front_word"])

	buf.Reset()
	require.NoError(t, WritePlacementsJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
