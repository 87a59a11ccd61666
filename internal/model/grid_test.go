package model

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(10, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows() != 10 || g.Cols() != 11 {
		t.Errorf("expected 10x11, got %dx%d", g.Rows(), g.Cols())
	}
	s, err := g.Cell(9, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Blank {
		t.Errorf("expected blank cell, got %q", s)
	}
}

func TestNewGrid_InvalidSize(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 11}, {10, 0}, {-1, 5}} {
		if _, err := NewGrid(tc.r, tc.c); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for %dx%d, got %v", tc.r, tc.c, err)
		}
	}
}

func TestGrid_SetCellNormalizes(t *testing.T) {
	g, _ := NewGrid(2, 3)
	if err := g.SetCell(0, 0, "ü"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := g.Cell(0, 0); s != "Ü" {
		t.Errorf("expected Ü, got %q", s)
	}
	if err := g.SetCell(0, 1, "7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.SetCell(0, 2, "AB"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for two characters, got %v", err)
	}
	if err := g.SetCell(1, 0, "#"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for punctuation, got %v", err)
	}
}

func TestGrid_OutOfRange(t *testing.T) {
	g, _ := NewGrid(2, 2)
	if _, err := g.Cell(2, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := g.SetCell(0, -1, "A"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := g.SetSelected(5, 5, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if !g.IsBlank(9, 9) {
		t.Error("expected out-of-range cell to count as blank")
	}
}

func TestGrid_ClearingCellDropsSelection(t *testing.T) {
	g, _ := NewGrid(1, 3)
	_ = g.SetCell(0, 1, "X")
	_ = g.SetSelected(0, 1, true)
	_ = g.SetCell(0, 1, " ")
	if on, _ := g.Selected(0, 1); on {
		t.Error("expected selection to be cleared with the cell")
	}
}

func TestGridFromRows(t *testing.T) {
	g, err := GridFromRows([]string{"ESKIST", "..DREI"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Cols() != 6 {
		t.Errorf("expected 6 columns, got %d", g.Cols())
	}
	if got := g.RowText(1); got != "  DREI" {
		t.Errorf("expected %q, got %q", "  DREI", got)
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g, _ := GridFromRows([]string{"AB"})
	c := g.Clone()
	_ = c.SetCell(0, 0, "Z")
	if s, _ := g.Cell(0, 0); s != "A" {
		t.Errorf("expected original to keep A, got %q", s)
	}
	if g.Equal(c) {
		t.Error("expected grids to differ")
	}
	_ = c.SetCell(0, 0, "A")
	if !g.Equal(c) {
		t.Error("expected grids to be equal again")
	}
}
