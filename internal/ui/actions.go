package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/export"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/importer"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/project"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/script"
)

// ─── Edit Actions ──────────────────────────────────────────

func (a *App) clearFace() {
	if err := a.session.Clear(); err != nil {
		dialog.ShowError(err, a.window)
	}
	a.refresh()
}

func (a *App) undo() {
	ok, err := a.session.Undo()
	if err != nil {
		dialog.ShowError(err, a.window)
	}
	if !ok {
		a.showStatus("Nothing to undo")
		return
	}
	a.refresh()
}

func (a *App) redo() {
	ok, err := a.session.Redo()
	if err != nil {
		dialog.ShowError(err, a.window)
	}
	if !ok {
		a.showStatus("Nothing to redo")
		return
	}
	a.refresh()
}

func (a *App) togglePixel() {
	cur := a.session.Cursor()
	if _, err := a.session.ToggleSelected(cur.Row, cur.Col); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.refresh()
}

// ─── File Dialog Helpers ───────────────────────────────────

// saveFile asks for a target path and hands it to write. The writer from the
// dialog is closed first so write can create the file itself.
func (a *App) saveFile(name string, exts []string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := write(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.log.Info().Str("file", path).Msg("written")
		a.showStatus("Saved %s", path)
	}, a.window)
	d.SetFileName(name)
	if len(exts) > 0 {
		d.SetFilter(storage.NewExtensionFileFilter(exts))
	}
	d.Show()
}

func (a *App) openFile(exts []string, read func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		read(path)
	}, a.window)
	if len(exts) > 0 {
		d.SetFilter(storage.NewExtensionFileFilter(exts))
	}
	d.Show()
}

func (a *App) showWarnings(title string, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	dialog.ShowInformation(title, strings.Join(warnings, "\n"), a.window)
}

// confirmWarnings runs proceed directly when there is nothing to warn
// about, otherwise only after the user agrees.
func (a *App) confirmWarnings(title string, warnings []string, proceed func()) {
	if len(warnings) == 0 {
		proceed()
		return
	}
	msg := strings.Join(warnings, "\n") + "\n\nContinue anyway?"
	dialog.ShowConfirm(title, msg, func(ok bool) {
		if ok {
			proceed()
		}
	}, a.window)
}

// ─── Templates ─────────────────────────────────────────────

func (a *App) loadTemplate() {
	a.openFile([]string{".json"}, a.openTemplateFile)
}

func (a *App) openTemplateFile(path string) {
	tmpl, err := project.LoadTemplate(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.applyTemplate(tmpl)
	a.rememberTemplate(path)
}

func (a *App) applyTemplate(tmpl model.Template) {
	warnings, err := a.session.LoadTemplate(tmpl)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.refresh()
	a.showWarnings("Template Loaded", warnings)
}

func (a *App) saveTemplate() {
	a.saveFile("wortuhr.json", []string{".json"}, func(path string) error {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err := project.SaveTemplate(path, a.session.Template(name)); err != nil {
			return err
		}
		a.rememberTemplate(path)
		return nil
	})
}

func (a *App) rememberTemplate(path string) {
	a.config.AddRecent(path)
	if err := a.saveConfig(); err != nil {
		a.log.Warn().Err(err).Msg("config not saved")
	}
	a.SetupMenus()
}

func (a *App) showLibraryDialog() {
	names := a.templates.Names()
	list := widget.NewList(
		func() int { return len(a.templates.Templates) },
		func() fyne.CanvasObject { return widget.NewLabel("template") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			t := a.templates.Templates[i]
			rows, cols := t.Size()
			o.(*widget.Label).SetText(fmt.Sprintf("%s  (%dx%d, %s)", t.Name, cols, rows, t.CreatedAt))
		},
	)
	selected := -1
	list.OnSelected = func(id widget.ListItemID) { selected = id }

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(fmt.Sprintf("Face %d", len(names)+1))

	persist := func() {
		if err := project.SaveTemplates(templateLibraryPath(a.config), a.templates); err != nil {
			dialog.ShowError(err, a.window)
		}
		list.Refresh()
	}

	addBtn := widget.NewButton("Add Current Face", func() {
		name := strings.TrimSpace(nameEntry.Text)
		if name == "" {
			name = nameEntry.PlaceHolder
		}
		a.templates.Add(a.session.Template(name))
		persist()
	})
	loadBtn := widget.NewButton("Load Selected", func() {
		if selected < 0 || selected >= len(a.templates.Templates) {
			return
		}
		a.applyTemplate(a.templates.Templates[selected])
	})
	removeBtn := widget.NewButton("Remove Selected", func() {
		if selected < 0 || selected >= len(a.templates.Templates) {
			return
		}
		a.templates.Remove(a.templates.Templates[selected].ID)
		selected = -1
		list.UnselectAll()
		persist()
	})

	content := container.NewBorder(
		container.NewBorder(nil, nil, nil, addBtn, nameEntry),
		container.NewHBox(loadBtn, removeBtn),
		nil, nil,
		list,
	)
	d := dialog.NewCustom("Template Library", "Close", content, a.window)
	d.Resize(fyne.NewSize(480, 400))
	d.Show()
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importGrid() {
	a.openFile([]string{".csv", ".txt", ".xlsx", ".xlsm"}, func(path string) {
		result := importer.ImportGrid(path)
		if len(result.Errors) > 0 {
			dialog.ShowError(fmt.Errorf("errors encountered during import:\n\n%s", strings.Join(result.Errors, "\n")), a.window)
			return
		}
		for _, w := range result.Warnings {
			a.log.Warn().Str("file", path).Msg(w)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		a.applyTemplate(model.NewTemplate(name, result.Grid, a.session.Options()))
	})
}

// ─── Exports ───────────────────────────────────────────────

func (a *App) exportFaceDXF() {
	grid := a.session.Grid()
	var warnings []string
	if empty := export.EmptyCells(grid); len(empty) > 0 {
		warnings = append(warnings, fmt.Sprintf("%d empty cells: %s", len(empty), strings.Join(empty, " ")))
	}
	a.confirmWarnings("Incomplete Face", warnings, func() {
		face := export.FaceLayout(grid, a.config.Face, a.session.Options())
		a.saveFile("front.dxf", []string{".dxf"}, func(path string) error {
			return export.WriteFaceDXF(path, face)
		})
	})
}

func (a *App) exportSheetPDF() {
	grid := a.session.Grid()
	data := export.SheetData{
		Title:      "Wortuhr",
		Grid:       grid,
		Face:       export.FaceLayout(grid, a.config.Face, a.session.Options()),
		States:     a.session.States(),
		Placements: a.session.Placements(),
	}
	a.saveFile("wortuhr.pdf", []string{".pdf"}, func(path string) error {
		return export.WriteSheetPDF(path, data)
	})
}

func (a *App) exportReport() {
	grid := a.session.Grid()
	placements := a.session.Placements()
	a.saveFile("placements.xlsx", []string{".xlsx"}, func(path string) error {
		return export.WritePlacementsXLSX(path, grid, placements)
	})
}

// ─── Script Generation ─────────────────────────────────────

func (a *App) generateScript() {
	warnings := script.Check(a.session.States())
	a.confirmWarnings("Words Missing", warnings, func() {
		grid := a.session.Grid()
		header := script.Header(grid, a.session.Layout(), a.session.Placements(), a.session.Options())
		a.showOutput(header, script.ClassName(grid.Rows(), grid.Cols())+".h")
	})
}

func (a *App) generateIcons() {
	header, err := script.IconHeader(a.session.Grid(), a.config.IconCopies)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.showOutput(header, "Grafik.h")
}

// showOutput shows generated code on the output tab and offers to save it.
func (a *App) showOutput(text, fileName string) {
	a.output.SetText(text)
	a.tabs.SelectIndex(1)
	a.saveFile(fileName, []string{".h", ".hpp"}, func(path string) error {
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	})
}
