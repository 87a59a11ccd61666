package widgets

import (
	"testing"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

func TestLitCells_MirrorsColumns(t *testing.T) {
	placements := []model.Placement{
		{Word: "UHR", Status: model.StatusFound, Row: 9, Start: 0, End: 2},
		{Word: "ELF", Status: model.StatusMissing, Row: -1, Start: -1, End: -1},
	}
	lit := LitCells(placements, 11)
	if len(lit) != 3 {
		t.Fatalf("expected 3 lit cells, got %d", len(lit))
	}
	for _, c := range []int{8, 9, 10} {
		if !lit[Cell{Row: 9, Col: c}] {
			t.Errorf("expected cell 9,%d to be lit", c)
		}
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status model.Status
		want   any
	}{
		{model.StatusFound, ColorFound},
		{model.StatusMissing, ColorMissing},
		{model.StatusExcluded, ColorExcluded},
		{model.StatusDisabled, ColorDisabled},
	}
	for _, tc := range tests {
		if got := StatusColor(tc.status); got != tc.want {
			t.Errorf("%v: expected %v, got %v", tc.status, tc.want, got)
		}
	}
}
