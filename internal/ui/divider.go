package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/divider"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/export"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/project"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/ui/widgets"
)

// Stock sheet used for the strip estimate shown under the preview.
const (
	estimateSheetW = 600.0
	estimateSheetH = 400.0
	estimateKerf   = 0.2
)

// dividerPanel edits one divider strip.
type dividerPanel struct {
	app      *App
	settings divider.Settings

	length, height, slotWidth *widget.Entry
	pitch, count, offset      *widget.Entry
	orientation               *widget.Select
	preview                   *widgets.DividerPreview
	info                      *widget.Label
}

func newDividerPanel(a *App) *dividerPanel {
	s := divider.DefaultSettings()
	s.Length = a.config.DividerLength
	s.Height = a.config.DividerHeight
	s.SlotWidth = a.config.DividerSlotWidth
	return &dividerPanel{app: a, settings: s}
}

func (p *dividerPanel) build() fyne.CanvasObject {
	floatEntry := func(val float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.FormatFloat(val, 'f', -1, 64))
		e.OnChanged = func(string) { p.update() }
		return e
	}

	p.length = floatEntry(p.settings.Length)
	p.height = floatEntry(p.settings.Height)
	p.slotWidth = floatEntry(p.settings.SlotWidth)
	p.pitch = floatEntry(p.settings.Pitch)
	p.count = widget.NewEntry()
	p.count.SetText(strconv.Itoa(p.settings.Count))
	p.count.OnChanged = func(string) { p.update() }
	p.offset = floatEntry(p.settings.Offset)
	p.orientation = widget.NewSelect([]string{divider.Vertical.String(), divider.Horizontal.String()}, func(string) { p.update() })
	p.orientation.SetSelected(p.settings.Orientation.String())

	row := func(label string, entry fyne.CanvasObject, help string) []fyne.CanvasObject {
		return []fyne.CanvasObject{
			widget.NewLabel(label),
			container.NewBorder(nil, nil, nil, newHelpIcon(help), entry),
		}
	}
	var cells []fyne.CanvasObject
	cells = append(cells, row("Length (mm)", p.length, "Overall length of the strip")...)
	cells = append(cells, row("Height (mm)", p.height, "Half the strip height; the strip is cut twice as high")...)
	cells = append(cells, row("Slot Width (mm)", p.slotWidth, "Width of each slot, material thickness plus play")...)
	cells = append(cells, row("Slot Pitch (mm)", p.pitch, "Distance between slot centres, usually the letter pitch")...)
	cells = append(cells, row("Slots", p.count, fmt.Sprintf("Number of slots, 1 to %d", divider.MaxSlots))...)
	cells = append(cells, row("Offset (mm)", p.offset, "Shift of the slots on horizontal strips so they interlock with the vertical ones")...)
	cells = append(cells, row("Orientation", p.orientation, "Vertical strips are centred, horizontal strips are shifted by the offset")...)

	form := widget.NewCard("Divider Strip", "", container.NewGridWithColumns(2, cells...))

	p.info = widget.NewLabel("")
	p.preview = widgets.NewDividerPreview(divider.Geometry{}, 720, 180)

	buttons := container.NewHBox(
		newButtonWithTooltip("Export DXF", theme.DownloadIcon(), "Write the strip as laser DXF", func() { p.exportDXF() }),
		newButtonWithTooltip("Export PDF", theme.DocumentPrintIcon(), "Write a dimensioned preview", func() { p.exportPDF() }),
		newButtonWithTooltip("Load Settings", theme.FolderOpenIcon(), "Read SCHLITZABSTAND, ANZAHL_SCHLITZE and VERSCHIEBUNG from a file", func() { p.loadSettings() }),
		newButtonWithTooltip("Save Settings", theme.DocumentSaveIcon(), "Write pitch, slot count and offset to a file", func() { p.saveSettings() }),
	)

	p.update()
	return container.NewVScroll(container.NewVBox(form, buttons, p.preview, p.info))
}

// read parses the form. Fields that do not parse keep their last value.
func (p *dividerPanel) read() divider.Settings {
	s := p.settings
	parse := func(e *widget.Entry, dst *float64) {
		if v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(e.Text), ",", ".", 1), 64); err == nil {
			*dst = v
		}
	}
	parse(p.length, &s.Length)
	parse(p.height, &s.Height)
	parse(p.slotWidth, &s.SlotWidth)
	parse(p.pitch, &s.Pitch)
	parse(p.offset, &s.Offset)
	if n, err := strconv.Atoi(strings.TrimSpace(p.count.Text)); err == nil {
		s.Count = n
	}
	if o, err := divider.ParseOrientation(p.orientation.Selected); err == nil {
		s.Orientation = o
	}
	return s
}

func (p *dividerPanel) update() {
	if p.preview == nil {
		return
	}
	s := p.read()
	g, err := divider.Build(s)
	if err != nil {
		p.info.SetText(err.Error())
		return
	}
	p.settings = s
	p.preview.SetGeometry(g)
	cfg := p.app.config
	est := divider.EstimateFace(cfg.Rows, cfg.Cols, g, estimateSheetW, estimateSheetH, estimateKerf)
	p.info.SetText(fmt.Sprintf(
		"First slot at %.4f mm, strip %.1f x %.1f mm\n%d strips for a %dx%d face, %d per %.0fx%.0f sheet, %d sheets (%.0f%% waste)",
		g.FirstSlot, s.Length, g.StripHeight,
		est.Strips, cfg.Cols, cfg.Rows, est.StripsPerSheet, estimateSheetW, estimateSheetH, est.Sheets, est.WastePercent,
	))
}

func (p *dividerPanel) geometry() (divider.Geometry, bool) {
	g, err := divider.Build(p.read())
	if err != nil {
		dialog.ShowError(err, p.app.window)
		return divider.Geometry{}, false
	}
	return g, true
}

func (p *dividerPanel) exportDXF() {
	g, ok := p.geometry()
	if !ok {
		return
	}
	name := fmt.Sprintf("divider_%s.dxf", g.Settings.Orientation)
	p.app.saveFile(name, []string{".dxf"}, func(path string) error {
		return export.WriteDividerDXF(path, g)
	})
}

func (p *dividerPanel) exportPDF() {
	g, ok := p.geometry()
	if !ok {
		return
	}
	name := fmt.Sprintf("divider_%s.pdf", g.Settings.Orientation)
	p.app.saveFile(name, []string{".pdf"}, func(path string) error {
		return export.WriteDividerPDF(path, g)
	})
}

func (p *dividerPanel) loadSettings() {
	p.app.openFile([]string{".json", ".json5", ".txt"}, func(path string) {
		s, err := project.LoadDividerSettings(path, p.read())
		if err != nil {
			dialog.ShowError(err, p.app.window)
			return
		}
		p.pitch.SetText(strconv.FormatFloat(s.Pitch, 'f', -1, 64))
		p.count.SetText(strconv.Itoa(s.Count))
		p.offset.SetText(strconv.FormatFloat(s.Offset, 'f', -1, 64))
		p.update()
	})
}

func (p *dividerPanel) saveSettings() {
	s := p.read()
	p.app.saveFile("divider.json", []string{".json"}, func(path string) error {
		return project.SaveDividerSettings(path, s)
	})
}
