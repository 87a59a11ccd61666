package session

import (
	"testing"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

func gridOf(t *testing.T, rows ...string) *model.Grid {
	t.Helper()
	g, err := model.GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows failed: %v", err)
	}
	return g
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(gridOf(t, "A"), model.Options{}, "first"))
	h.Push(MakeSnapshot(gridOf(t, "B"), model.Options{}, "second"))

	restored, ok := h.Undo(MakeSnapshot(gridOf(t, "C"), model.Options{}, "current"))
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if restored.Grid.RowText(0) != "B" {
		t.Errorf("expected B, got %q", restored.Grid.RowText(0))
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Grid.RowText(0) != "C" {
		t.Errorf("expected C, got %q", redone.Grid.RowText(0))
	}
}

func TestHistory_PushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(gridOf(t, "A"), model.Options{}, "a"))
	h.Undo(MakeSnapshot(gridOf(t, "B"), model.Options{}, "b"))
	if !h.CanRedo() {
		t.Fatal("expected redo after undo")
	}
	h.Push(MakeSnapshot(gridOf(t, "C"), model.Options{}, "c"))
	if h.CanRedo() {
		t.Error("push should clear the redo stack")
	}
}

func TestHistory_MaxDepth(t *testing.T) {
	h := NewHistory()
	for i := 0; i < defaultMaxDepth+10; i++ {
		h.Push(MakeSnapshot(nil, model.Options{}, "step"))
	}
	if len(h.undoStack) != defaultMaxDepth {
		t.Errorf("expected %d snapshots, got %d", defaultMaxDepth, len(h.undoStack))
	}
}

func TestHistory_EmptyUndoRedo(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(Snapshot{}); ok {
		t.Error("undo on empty history should fail")
	}
	if _, ok := h.Redo(Snapshot{}); ok {
		t.Error("redo on empty history should fail")
	}
}

func TestMakeSnapshot_DeepCopy(t *testing.T) {
	g := gridOf(t, "AB")
	snap := MakeSnapshot(g, model.Options{NoZwanzig: true}, "copy")
	_ = g.SetCell(0, 0, "Z")
	if snap.Grid.RowText(0) != "AB" {
		t.Errorf("snapshot changed with the grid: %q", snap.Grid.RowText(0))
	}
	if !snap.Options.NoZwanzig {
		t.Error("expected options to be captured")
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, model.Options{}, "a"))
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("expected empty history after Clear")
	}
}
