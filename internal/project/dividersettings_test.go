package project

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/divider"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

func TestParseDividerSettings_JSON5(t *testing.T) {
	data := []byte(`{
		// spacing of the letters
		SCHLITZABSTAND: "16,6666",
		ANZAHL_SCHLITZE: 12,
		VERSCHIEBUNG: 8.3333,
	}`)
	s, err := ParseDividerSettings(data, divider.DefaultSettings())
	require.NoError(t, err)
	assert.InDelta(t, 16.6666, s.Pitch, 1e-9)
	assert.Equal(t, 12, s.Count)
	assert.InDelta(t, 8.3333, s.Offset, 1e-9)
	assert.InDelta(t, 239.5, s.Length, 1e-9)
}

func TestParseDividerSettings_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not an object", `[1, 2]`, "object"},
		{"missing keys", `{"SCHLITZABSTAND": 16}`, "ANZAHL_SCHLITZE, VERSCHIEBUNG"},
		{"zero pitch", `{"SCHLITZABSTAND": 0, "ANZAHL_SCHLITZE": 12, "VERSCHIEBUNG": 0}`, "SCHLITZABSTAND"},
		{"too many slots", `{"SCHLITZABSTAND": 16, "ANZAHL_SCHLITZE": 25, "VERSCHIEBUNG": 8}`, "ANZAHL_SCHLITZE"},
		{"fractional count", `{"SCHLITZABSTAND": 16, "ANZAHL_SCHLITZE": 2.5, "VERSCHIEBUNG": 8}`, "ANZAHL_SCHLITZE"},
		{"negative offset", `{"SCHLITZABSTAND": 16, "ANZAHL_SCHLITZE": 12, "VERSCHIEBUNG": -1}`, "VERSCHIEBUNG"},
		{"offset above pitch", `{"SCHLITZABSTAND": 16, "ANZAHL_SCHLITZE": 12, "VERSCHIEBUNG": 17}`, "must not exceed"},
		{"not a number", `{"SCHLITZABSTAND": "abc", "ANZAHL_SCHLITZE": 12, "VERSCHIEBUNG": 1}`, "not a number"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDividerSettings([]byte(tc.data), divider.DefaultSettings())
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.True(t, strings.Contains(err.Error(), tc.want), err.Error())
		})
	}
}

func TestSaveAndLoadDividerSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "divider.json")
	s := divider.DefaultSettings()
	s.Count = 11
	s.Offset = 4

	require.NoError(t, SaveDividerSettings(path, s))
	loaded, err := LoadDividerSettings(path, divider.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 11, loaded.Count)
	assert.InDelta(t, 4, loaded.Offset, 1e-9)
}
