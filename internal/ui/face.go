package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/export"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/ui/widgets"
)

// cellEntry is a one-letter entry that reports when it gains focus, so the
// session cursor follows the keyboard.
type cellEntry struct {
	widget.Entry
	row, col int
	onFocus  func(r, c int)
}

func newCellEntry(r, c int, onFocus func(r, c int)) *cellEntry {
	e := &cellEntry{row: r, col: c, onFocus: onFocus}
	e.ExtendBaseWidget(e)
	e.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	return e
}

// FocusGained implements fyne.Focusable.
func (e *cellEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.onFocus != nil {
		e.onFocus(e.row, e.col)
	}
}

// ─── Face Panel ────────────────────────────────────────────

func (a *App) buildFacePanel() fyne.CanvasObject {
	grid := a.session.Grid()
	rows, cols := grid.Rows(), grid.Cols()

	a.cells = make([][]*cellEntry, rows)
	gridBox := container.NewGridWithColumns(cols)
	for r := 0; r < rows; r++ {
		a.cells[r] = make([]*cellEntry, cols)
		for c := 0; c < cols; c++ {
			e := newCellEntry(r, c, func(r, c int) { _ = a.session.MoveTo(r, c) })
			row, col := r, c
			e.OnChanged = func(text string) { a.cellChanged(row, col, text) }
			a.cells[r][c] = e
			gridBox.Add(e)
		}
	}

	opts := a.session.Options()
	a.zwanzig = widget.NewCheck("no ZWANZIG", func(bool) { a.optionsChanged() })
	a.zwanzig.Checked = opts.NoZwanzig
	a.dreiviertel = widget.NewCheck("no DREIVIERTEL", func(bool) { a.optionsChanged() })
	a.dreiviertel.Checked = opts.NoDreiviertel
	a.minuteDots = widget.NewCheck("no minute dots", func(bool) { a.optionsChanged() })
	a.minuteDots.Checked = opts.NoMinuteDots

	a.status = widget.NewLabel("")
	a.wordList = container.NewVBox()
	a.preview = widgets.NewFacePreview(export.Face{}, nil, a.config.Face.FrameSize, 320)

	toolbar := container.NewHBox(
		newButtonWithTooltip("Face DXF", theme.DownloadIcon(), "Write the face as laser DXF", func() { a.exportFaceDXF() }),
		newButtonWithTooltip("Save", theme.DocumentSaveIcon(), "Save the face as template", func() { a.saveTemplate() }),
		newButtonWithTooltip("Load", theme.FolderOpenIcon(), "Load a template", func() { a.loadTemplate() }),
		newButtonWithTooltip("Clear", theme.ContentClearIcon(), "Blank all cells and reset the options", func() { a.clearFace() }),
		newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", func() { a.undo() }),
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", func() { a.redo() }),
		layout.NewSpacer(),
		newButtonWithTooltip("Pixel", theme.GridIcon(), "Toggle the icon pixel under the cursor", func() { a.togglePixel() }),
		newButtonWithTooltip("Script", theme.FileTextIcon(), "Generate the firmware word table", func() { a.generateScript() }),
		newButtonWithTooltip("Icons", theme.FileImageIcon(), "Generate the icon bitmaps", func() { a.generateIcons() }),
	)

	left := container.NewBorder(
		toolbar,
		container.NewVBox(
			container.NewHBox(a.zwanzig, a.dreiviertel, a.minuteDots),
			a.status,
		),
		nil, nil,
		container.NewVBox(gridBox, container.NewCenter(a.preview)),
	)
	right := container.NewBorder(
		widget.NewLabelWithStyle("Words", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(a.wordList),
	)

	split := container.NewHSplit(left, right)
	split.SetOffset(0.72)
	return split
}

// cellChanged stores the last typed character and moves the focus on.
func (a *App) cellChanged(r, c int, text string) {
	if a.syncing {
		return
	}
	value := strings.TrimSpace(text)
	if runes := []rune(value); len(runes) > 1 {
		value = string(runes[len(runes)-1])
	}
	if err := a.session.SetCell(r, c, value); err != nil {
		a.showStatus("%v", err)
		a.syncGrid()
		return
	}
	a.refresh()
	if value != "" {
		cur := a.session.Cursor()
		a.window.Canvas().Focus(a.cells[cur.Row][cur.Col])
	}
}

func (a *App) optionsChanged() {
	if a.syncing {
		return
	}
	opts := model.Options{
		NoZwanzig:     a.zwanzig.Checked,
		NoDreiviertel: a.dreiviertel.Checked,
		NoMinuteDots:  a.minuteDots.Checked,
	}
	if err := a.session.SetOptions(opts); err != nil {
		a.showStatus("%v", err)
	}
	a.refresh()
}

// refresh pushes the session state into every widget.
func (a *App) refresh() {
	a.syncGrid()
	a.refreshWords()

	grid := a.session.Grid()
	face := export.FaceLayout(grid, a.config.Face, a.session.Options())
	a.preview.SetFace(face, widgets.LitCells(a.session.Placements(), grid.Cols()))

	pixels := 0
	for _, row := range grid.SelectionMask() {
		for _, on := range row {
			if on {
				pixels++
			}
		}
	}
	found := 0
	states := a.session.States()
	for _, st := range states {
		if st.Status == model.StatusFound {
			found++
		}
	}
	a.showStatus("%d of %d words found, %d icon pixels", found, len(states), pixels)
}

func (a *App) syncGrid() {
	a.syncing = true
	defer func() { a.syncing = false }()

	grid := a.session.Grid()
	for r, row := range a.cells {
		for c, e := range row {
			text, _ := grid.Cell(r, c)
			if text == model.Blank {
				text = ""
			}
			on, _ := grid.Selected(r, c)
			if e.TextStyle.Italic != on {
				// icon pixels are shown in italics
				e.TextStyle = fyne.TextStyle{Monospace: true, Bold: true, Italic: on}
				e.Refresh()
			}
			if e.Text != text {
				e.SetText(text)
			}
		}
	}

	opts := a.session.Options()
	a.zwanzig.SetChecked(opts.NoZwanzig)
	a.dreiviertel.SetChecked(opts.NoDreiviertel)
	a.minuteDots.SetChecked(opts.NoMinuteDots)
}

func (a *App) refreshWords() {
	a.wordList.RemoveAll()
	for _, st := range a.session.States() {
		text := fmt.Sprintf("%-8s %s", st.Word.Text, st.Status)
		if st.Count > 1 {
			text += fmt.Sprintf(" (%dx)", st.Count)
		}
		label := canvas.NewText(text, widgets.StatusColor(st.Status))
		label.TextStyle = fyne.TextStyle{Monospace: true}
		a.wordList.Add(label)
	}
	a.wordList.Refresh()
}
