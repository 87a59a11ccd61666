package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/project"
)

// showSettingsDialog displays the application settings editor. Grid size
// and layout apply to the next start.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Helper to create a float entry bound to a pointer
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.FormatFloat(*val, 'f', -1, 64))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(*val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	themeSelect := widget.NewSelect([]string{ThemeSystem, ThemeLight, ThemeDark}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	layoutSelect := widget.NewSelect(model.LayoutNames(), func(selected string) {
		cfg.Layout = selected
	})
	layoutSelect.SetSelected(cfg.Layout)

	levelSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(selected string) {
		cfg.LogLevel = selected
	})
	levelSelect.SetSelected(cfg.LogLevel)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Log Level", levelSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Rows", intEntry(&cfg.Rows)),
		widget.NewFormItem("Columns", intEntry(&cfg.Cols)),
		widget.NewFormItem("Layout", layoutSelect),
		widget.NewFormItem("Icon Copies", intEntry(&cfg.IconCopies)),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Frame Size (mm)", floatEntry(&cfg.Face.FrameSize)),
		widget.NewFormItem("Letter Pitch (mm)", floatEntry(&cfg.Face.Pitch)),
		widget.NewFormItem("Text Height (mm)", floatEntry(&cfg.Face.TextHeight)),
		widget.NewFormItem("Umlaut Scale", floatEntry(&cfg.Face.UmlautScale)),
		widget.NewFormItem("Minute Dots", intEntry(&cfg.Face.DotCount)),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Divider Length (mm)", floatEntry(&cfg.DividerLength)),
		widget.NewFormItem("Divider Height (mm)", floatEntry(&cfg.DividerHeight)),
		widget.NewFormItem("Divider Slot Width (mm)", floatEntry(&cfg.DividerSlotWidth)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if cfg.Rows < 1 || cfg.Cols < 1 {
				dialog.ShowError(fmt.Errorf("rows and columns must be > 0"), a.window)
				return
			}
			a.config = cfg
			a.theme.SetName(cfg.Theme)
			a.app.Settings().SetTheme(a.theme)
			a.refresh()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.\nGrid size and layout apply after a restart.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 650))
	d.Show()
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		a.saveFile("wortuhr-backup.json", []string{".json"}, func(path string) error {
			return project.ExportAllData(path, a.config, a.templates)
		})
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your settings and the template library.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				a.openFile([]string{".json"}, func(path string) {
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.templates = backup.Templates
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					if err := project.SaveTemplates(templateLibraryPath(a.config), a.templates); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported templates: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				})
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, template library) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}
