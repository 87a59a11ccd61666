package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/project"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/session"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	theme      *WortuhrTheme
	config     model.AppConfig
	configPath string
	session    *session.Session
	templates  model.TemplateStore
	log        zerolog.Logger

	tabs *container.AppTabs

	// UI references for dynamic updates
	cells       [][]*cellEntry
	syncing     bool
	wordList    *fyne.Container
	preview     *widgets.FacePreview
	output      *widget.Entry
	status      *widget.Label
	zwanzig     *widget.Check
	dreiviertel *widget.Check
	minuteDots  *widget.Check

	divider *dividerPanel
}

// NewApp creates the application state for a blank face of the configured
// size and loads the template library.
func NewApp(application fyne.App, window fyne.Window, cfg model.AppConfig, configPath string, logger zerolog.Logger) (*App, error) {
	grid, err := cfg.NewGrid()
	if err != nil {
		return nil, err
	}
	layout, err := cfg.ResolveLayout()
	if err != nil {
		return nil, err
	}
	s, err := session.New(grid, layout, cfg.Options)
	if err != nil {
		return nil, err
	}
	s.SetLogger(logger)

	store, err := project.LoadTemplates(templateLibraryPath(cfg))
	if err != nil {
		logger.Warn().Err(err).Msg("template library not loaded")
		store = model.NewTemplateStore()
	}

	a := &App{
		app:        application,
		window:     window,
		theme:      NewWortuhrTheme(cfg.Theme),
		config:     cfg,
		configPath: configPath,
		session:    s,
		templates:  store,
		log:        logger,
	}
	application.Settings().SetTheme(a.theme)
	return a, nil
}

func templateLibraryPath(cfg model.AppConfig) string {
	if cfg.TemplateDir != "" {
		return filepath.Join(cfg.TemplateDir, "templates.json")
	}
	return project.DefaultTemplatePath()
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Face", func() { a.clearFace() }),
		fyne.NewMenuItem("Open Template...", func() { a.loadTemplate() }),
		fyne.NewMenuItem("Save Template...", func() { a.saveTemplate() }),
		a.recentMenuItem(),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Template Library...", func() { a.showLibraryDialog() }),
		fyne.NewMenuItem("Import Grid from CSV/Excel...", func() { a.importGrid() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Face DXF...", func() { a.exportFaceDXF() }),
		fyne.NewMenuItem("Export Sheet PDF...", func() { a.exportSheetPDF() }),
		fyne.NewMenuItem("Export Report XLSX...", func() { a.exportReport() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { a.window.Close() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() { a.undo() }),
		fyne.NewMenuItem("Redo", func() { a.redo() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Icon Pixel", func() { a.togglePixel() }),
		fyne.NewMenuItem("Clear Face", func() { a.clearFace() }),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Generate Script", func() { a.generateScript() }),
		fyne.NewMenuItem("Generate Icons", func() { a.generateIcons() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() { a.showSettingsDialog() }),
		fyne.NewMenuItem("Import / Export Data...", func() { a.showImportExportDialog() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() { a.showAboutDialog() }),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) recentMenuItem() *fyne.MenuItem {
	item := fyne.NewMenuItem("Open Recent", nil)
	var items []*fyne.MenuItem
	for _, path := range a.config.RecentTemplates {
		p := path
		items = append(items, fyne.NewMenuItem(filepath.Base(p), func() { a.openTemplateFile(p) }))
	}
	if len(items) == 0 {
		item.Disabled = true
		return item
	}
	item.ChildMenu = fyne.NewMenu("", items...)
	return item
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Wortuhr",
		"Wortuhr — word-clock face toolkit\n\n"+
			"Finds the clock words in a letter grid and writes the firmware\n"+
			"word table, icon bitmaps and laser drawings for the face.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.output = widget.NewMultiLineEntry()
	a.output.TextStyle = fyne.TextStyle{Monospace: true}
	a.output.Wrapping = fyne.TextWrapOff
	a.output.SetPlaceHolder("Generate the script or the icons to see the output here.")

	a.divider = newDividerPanel(a)

	faceTab := container.NewTabItem("Face", a.buildFacePanel())
	outputTab := container.NewTabItem("Output", a.output)
	dividerTab := container.NewTabItem("Divider", a.divider.build())

	a.tabs = container.NewAppTabs(faceTab, outputTab, dividerTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.refresh()
	return a.tabs
}

// showStatus puts a short message under the grid.
func (a *App) showStatus(format string, args ...interface{}) {
	if a.status != nil {
		a.status.SetText(fmt.Sprintf(format, args...))
	}
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(a.configPath, a.config)
}
