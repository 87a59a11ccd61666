package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

func newSession(t *testing.T, rows ...string) *Session {
	t.Helper()
	s, err := New(gridOf(t, rows...), model.TabularLayout(), model.Options{})
	require.NoError(t, err)
	return s
}

func stateOf(t *testing.T, s *Session, id model.WordID) model.WordState {
	t.Helper()
	for _, st := range s.States() {
		if st.Word.ID == id {
			return st
		}
	}
	t.Fatalf("no state for %v", id)
	return model.WordState{}
}

func TestNew_Validates(t *testing.T) {
	_, err := New(nil, model.ClockLayout(10, 11), model.Options{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = New(gridOf(t, "A"), model.Layout{}, model.Options{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestSession_SetCellAdvancesAndResolves(t *testing.T) {
	s := newSession(t, "...", "...", "...", "...")

	for _, ch := range []string{"u", "h", "r"} {
		require.NoError(t, s.Type(ch))
	}
	assert.Equal(t, Cursor{Row: 1, Col: 0}, s.Cursor())
	assert.Equal(t, "UHR", s.Grid().RowText(0))

	uhr := stateOf(t, s, model.WordUhr)
	assert.Equal(t, model.StatusFound, uhr.Status)
}

func TestSession_CursorWrapsAround(t *testing.T) {
	s := newSession(t, "..", "..")
	require.NoError(t, s.MoveTo(1, 1))
	require.NoError(t, s.Type("X"))
	assert.Equal(t, Cursor{}, s.Cursor())
}

func TestSession_SetCellRejectsInvalid(t *testing.T) {
	s := newSession(t, "..")
	assert.ErrorIs(t, s.SetCell(0, 0, "AB"), model.ErrInvalidInput)
	assert.ErrorIs(t, s.SetCell(0, 5, "A"), model.ErrOutOfRange)
	assert.False(t, s.History().CanUndo(), "failed edits must not be recorded")
}

func TestSession_ClearingCellKeepsCursorAndDropsSelection(t *testing.T) {
	s := newSession(t, "AB")
	on, err := s.ToggleSelected(0, 0)
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, s.SetCell(0, 0, " "))
	assert.Equal(t, Cursor{Row: 0, Col: 0}, s.Cursor())
	sel, _ := s.Grid().Selected(0, 0)
	assert.False(t, sel)
}

func TestSession_ToggleSelectedIgnoresBlank(t *testing.T) {
	s := newSession(t, "A.")
	on, err := s.ToggleSelected(0, 1)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = s.ToggleSelected(3, 3)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}

func TestSession_UndoRedo(t *testing.T) {
	s := newSession(t, "...")
	require.NoError(t, s.SetCell(0, 0, "A"))
	require.NoError(t, s.SetCell(0, 1, "B"))

	ok, err := s.Undo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A  ", s.Grid().RowText(0))

	ok, err = s.Redo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "AB ", s.Grid().RowText(0))

	ok, err = s.Redo()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_OptionsDisableWords(t *testing.T) {
	s := newSession(t, "ZWANZIG", ".......", ".......", ".......")
	assert.Equal(t, model.StatusFound, stateOf(t, s, model.WordMin20).Status)

	require.NoError(t, s.SetOptions(model.Options{NoZwanzig: true}))
	assert.Equal(t, model.StatusDisabled, stateOf(t, s, model.WordMin20).Status)

	ok, err := s.Undo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, s.Options().NoZwanzig)
}

func TestSession_ClearResetsEverything(t *testing.T) {
	s := newSession(t, "UHR")
	require.NoError(t, s.SetOptions(model.Options{NoDreiviertel: true}))
	require.NoError(t, s.MoveTo(0, 2))
	require.NoError(t, s.Clear())

	assert.Equal(t, "   ", s.Grid().RowText(0))
	assert.Equal(t, model.Options{}, s.Options())
	assert.Equal(t, Cursor{}, s.Cursor())
	assert.Equal(t, model.StatusMissing, stateOf(t, s, model.WordUhr).Status)
}

func TestSession_TemplateRoundTrip(t *testing.T) {
	s := newSession(t, "ESIST", "UHR..")
	require.NoError(t, s.SetOptions(model.Options{NoMinuteDots: true}))
	tmpl := s.Template("mine")

	other := newSession(t, ".....", ".....")
	warnings, err := other.LoadTemplate(tmpl)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.True(t, other.Grid().Equal(s.Grid()))
	assert.True(t, other.Options().NoMinuteDots)
	assert.Equal(t, model.StatusFound, stateOf(t, other, model.WordUhr).Status)
}

func TestSession_LoadTemplateTooLarge(t *testing.T) {
	big := newSession(t, "ABC", "DEF")
	small := newSession(t, "..")

	warnings, err := small.LoadTemplate(big.Template("big"))
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "AB", small.Grid().RowText(0))
}

func TestSession_LogsPlacements(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(t, "UHR")
	s.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	require.NoError(t, s.SetCell(0, 0, "U"))
	assert.Equal(t, len(s.Placements()), strings.Count(buf.String(), `"message":"placement"`))
}

func TestSession_PlacementsAreCopies(t *testing.T) {
	s := newSession(t, "UHR")
	p := s.Placements()
	require.NotEmpty(t, p)
	p[0].Word = "changed"
	assert.NotEqual(t, "changed", s.Placements()[0].Word)
}
