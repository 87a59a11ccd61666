package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/divider"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/export"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/importer"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/project"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/resolver"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/script"
)

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet("wortuhr "+name, flag.ContinueOnError)
}

func requireOutput(path string) error {
	if path == "" {
		return fmt.Errorf("--out is required")
	}
	return nil
}

func writeText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func runResolve(e *env, args []string) error {
	fs := newFlagSet("resolve")
	face := addFaceFlags(fs, e.cfg)
	asJSON := fs.Bool("json", false, "Print placements as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := loadFace(face)
	if err != nil {
		return err
	}
	for _, st := range s.States() {
		log.Info().
			Str("word", st.Word.Text).
			Str("status", st.Status.String()).
			Int("count", st.Count).
			Msg("word")
	}
	if *asJSON {
		return export.WritePlacementsJSON(e.stdout, s.Placements())
	}
	return resolver.Dump(e.stdout, s.Placements())
}

func runScript(e *env, args []string) error {
	fs := newFlagSet("script")
	face := addFaceFlags(fs, e.cfg)
	out := fs.StringP("out", "o", "", "Output header file")
	force := fs.Bool("force", false, "Write even if words are missing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireOutput(*out); err != nil {
		return err
	}
	s, err := loadFace(face)
	if err != nil {
		return err
	}
	if err := guard("script", script.Check(s.States()), *force); err != nil {
		return err
	}
	header := script.Header(s.Grid(), s.Layout(), s.Placements(), s.Options())
	if err := writeText(*out, header); err != nil {
		return err
	}
	log.Info().Str("file", *out).Msg("script written")
	return nil
}

func runIcons(e *env, args []string) error {
	fs := newFlagSet("icons")
	face := addFaceFlags(fs, e.cfg)
	out := fs.StringP("out", "o", "", "Output header file")
	copies := fs.Int("copies", e.cfg.IconCopies, "Copies of the face bitmap")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireOutput(*out); err != nil {
		return err
	}
	s, err := loadFace(face)
	if err != nil {
		return err
	}
	header, err := script.IconHeader(s.Grid(), *copies)
	if err != nil {
		return err
	}
	if err := writeText(*out, header); err != nil {
		return err
	}
	log.Info().Str("file", *out).Int("copies", *copies).Msg("icons written")
	return nil
}

func runFace(e *env, args []string) error {
	fs := newFlagSet("face")
	face := addFaceFlags(fs, e.cfg)
	out := fs.StringP("out", "o", "", "Output DXF file")
	force := fs.Bool("force", false, "Write even if cells are empty")
	pitch := fs.Float64("pitch", e.cfg.Face.Pitch, "Letter pitch in mm")
	frame := fs.Float64("frame", e.cfg.Face.FrameSize, "Frame size in mm")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireOutput(*out); err != nil {
		return err
	}
	s, err := loadFace(face)
	if err != nil {
		return err
	}
	grid := s.Grid()
	var warnings []string
	if empty := export.EmptyCells(grid); len(empty) > 0 {
		warnings = append(warnings, fmt.Sprintf("empty cells: %s", strings.Join(empty, " ")))
	}
	if err := guard("face", warnings, *force); err != nil {
		return err
	}

	settings := e.cfg.Face
	settings.Pitch = *pitch
	settings.FrameSize = *frame
	if err := export.WriteFaceDXF(*out, export.FaceLayout(grid, settings, s.Options())); err != nil {
		return err
	}
	log.Info().Str("file", *out).Msg("face written")
	return nil
}

func runDivider(e *env, args []string) error {
	fs := newFlagSet("divider")
	base := divider.DefaultSettings()
	base.Length = e.cfg.DividerLength
	base.Height = e.cfg.DividerHeight
	base.SlotWidth = e.cfg.DividerSlotWidth

	out := fs.StringP("out", "o", "", "Output DXF file")
	pdfOut := fs.String("pdf", "", "Also write a PDF preview")
	settingsFile := fs.String("settings", "", "Divider settings file (SCHLITZABSTAND, ANZAHL_SCHLITZE, VERSCHIEBUNG)")
	orientation := fs.String("orientation", "vertical", "Strip orientation (vertical, horizontal)")
	length := fs.Float64("length", base.Length, "Strip length in mm")
	height := fs.Float64("height", base.Height, "Half strip height in mm")
	slotWidth := fs.Float64("slot-width", base.SlotWidth, "Slot width in mm")
	pitch := fs.Float64("pitch", base.Pitch, "Slot pitch in mm")
	count := fs.Int("count", base.Count, "Number of slots")
	offset := fs.Float64("offset", base.Offset, "Offset of horizontal strips in mm")
	sheetW := fs.Float64("sheet-width", 0, "Stock sheet width in mm for the material estimate")
	sheetH := fs.Float64("sheet-height", 0, "Stock sheet height in mm for the material estimate")
	kerf := fs.Float64("kerf", 0.2, "Laser kerf in mm for the material estimate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireOutput(*out); err != nil {
		return err
	}

	settings := base
	settings.Length = *length
	settings.Height = *height
	settings.SlotWidth = *slotWidth
	settings.Pitch = *pitch
	settings.Count = *count
	settings.Offset = *offset
	if *settingsFile != "" {
		var err error
		if settings, err = project.LoadDividerSettings(*settingsFile, settings); err != nil {
			return err
		}
	}
	o, err := divider.ParseOrientation(*orientation)
	if err != nil {
		return err
	}
	settings.Orientation = o

	g, err := divider.Build(settings)
	if err != nil {
		return err
	}
	if err := export.WriteDividerDXF(*out, g); err != nil {
		return err
	}
	log.Info().
		Str("file", *out).
		Str("orientation", o.String()).
		Float64("first_slot", g.FirstSlot).
		Msg("divider written")

	if *pdfOut != "" {
		if err := export.WriteDividerPDF(*pdfOut, g); err != nil {
			return err
		}
		log.Info().Str("file", *pdfOut).Msg("divider preview written")
	}
	if *sheetW > 0 && *sheetH > 0 {
		est := divider.EstimateFace(e.cfg.Rows, e.cfg.Cols, g, *sheetW, *sheetH, *kerf)
		log.Info().
			Int("strips", est.Strips).
			Int("per_sheet", est.StripsPerSheet).
			Int("sheets", est.Sheets).
			Float64("waste_percent", est.WastePercent).
			Msg("material estimate")
	}
	return nil
}

func runSheet(e *env, args []string) error {
	fs := newFlagSet("sheet")
	face := addFaceFlags(fs, e.cfg)
	out := fs.StringP("out", "o", "", "Output PDF file")
	title := fs.String("title", "Wortuhr", "Sheet title")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireOutput(*out); err != nil {
		return err
	}
	s, err := loadFace(face)
	if err != nil {
		return err
	}
	grid := s.Grid()
	data := export.SheetData{
		Title:      *title,
		Grid:       grid,
		Face:       export.FaceLayout(grid, e.cfg.Face, s.Options()),
		States:     s.States(),
		Placements: s.Placements(),
	}
	if err := export.WriteSheetPDF(*out, data); err != nil {
		return err
	}
	log.Info().Str("file", *out).Msg("sheet written")
	return nil
}

func runReport(e *env, args []string) error {
	fs := newFlagSet("report")
	face := addFaceFlags(fs, e.cfg)
	out := fs.StringP("out", "o", "", "Output file (.xlsx or .json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireOutput(*out); err != nil {
		return err
	}
	s, err := loadFace(face)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(*out), ".json") {
		if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", *out, err)
		}
		defer f.Close()
		if err := export.WritePlacementsJSON(f, s.Placements()); err != nil {
			return err
		}
	} else if err := export.WritePlacementsXLSX(*out, s.Grid(), s.Placements()); err != nil {
		return err
	}
	log.Info().Str("file", *out).Msg("report written")
	return nil
}

func runImport(e *env, args []string) error {
	fs := newFlagSet("import")
	in := fs.StringP("in", "i", "", "CSV or XLSX file with the letters")
	out := fs.StringP("out", "o", "", "Template file to write")
	name := fs.String("name", "", "Template name (defaults to the file name)")
	library := fs.Bool("library", false, "Also add the template to the template library")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("--in is required")
	}
	if err := requireOutput(*out); err != nil {
		return err
	}

	result := importer.ImportGrid(*in)
	for _, w := range result.Warnings {
		log.Warn().Str("file", *in).Msg(w)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("failed to import %s: %s", *in, strings.Join(result.Errors, "; "))
	}

	tmplName := *name
	if tmplName == "" {
		tmplName = strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
	}
	tmpl := model.NewTemplate(tmplName, result.Grid, e.cfg.Options)
	if err := project.SaveTemplate(*out, tmpl); err != nil {
		return err
	}
	log.Info().Str("file", *out).Str("id", tmpl.ID).Msg("template written")

	if *library {
		path := project.DefaultTemplatePath()
		if e.cfg.TemplateDir != "" {
			path = filepath.Join(e.cfg.TemplateDir, "templates.json")
		}
		store, err := project.LoadTemplates(path)
		if err != nil {
			return err
		}
		store.Add(tmpl)
		if err := project.SaveTemplates(path, store); err != nil {
			return err
		}
		log.Info().Str("library", path).Int("templates", len(store.Templates)).Msg("template added")
	}
	return nil
}

func runInspect(e *env, args []string) error {
	fs := newFlagSet("inspect")
	asJSON := fs.Bool("json", false, "Print the summary as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("inspect takes exactly one DXF file")
	}
	result := importer.InspectDXF(fs.Arg(0))
	for _, w := range result.Warnings {
		log.Warn().Msg(w)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("failed to inspect %s: %s", fs.Arg(0), strings.Join(result.Errors, "; "))
	}

	if *asJSON {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	for _, kind := range sortedKeys(result.Counts) {
		fmt.Fprintf(e.stdout, "%-12s %d\n", kind, result.Counts[kind])
	}
	for i, o := range result.Outlines {
		w, h := o.Size()
		fmt.Fprintf(e.stdout, "outline %d: %.2f x %.2f mm\n", i+1, w, h)
	}
	fmt.Fprintf(e.stdout, "circles: %d, open chains: %d\n", len(result.Circles), result.Open)
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
