package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/importer"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/project"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/session"
)

// faceFlags are shared by every command that reads a face.
type faceFlags struct {
	grid          string
	layout        string
	noZwanzig     bool
	noDreiviertel bool
	noMinuteDots  bool
}

func addFaceFlags(fs *flag.FlagSet, cfg model.AppConfig) *faceFlags {
	f := &faceFlags{}
	fs.StringVarP(&f.grid, "grid", "g", "", "Face file: template JSON, CSV or XLSX (required)")
	fs.StringVar(&f.layout, "layout", cfg.Layout, "Word layout ("+strings.Join(model.LayoutNames(), ", ")+")")
	fs.BoolVar(&f.noZwanzig, "no-zwanzig", cfg.Options.NoZwanzig, "Face has no ZWANZIG")
	fs.BoolVar(&f.noDreiviertel, "no-dreiviertel", cfg.Options.NoDreiviertel, "Face has no DREIVIERTEL")
	fs.BoolVar(&f.noMinuteDots, "no-minute-dots", cfg.Options.NoMinuteDots, "Omit the minute dots")
	return f
}

// loadFace reads the face file into a session. Options stored in a template
// are combined with the flags.
func loadFace(f *faceFlags) (*session.Session, error) {
	if f.grid == "" {
		return nil, fmt.Errorf("--grid is required")
	}

	var (
		grid     *model.Grid
		opts     model.Options
		warnings []string
	)
	switch strings.ToLower(filepath.Ext(f.grid)) {
	case ".json":
		tmpl, err := project.LoadTemplate(f.grid)
		if err != nil {
			return nil, err
		}
		grid, warnings, err = tmpl.ToGrid()
		if err != nil {
			return nil, err
		}
		opts = tmpl.Options()
	default:
		result := importer.ImportGrid(f.grid)
		if len(result.Errors) > 0 {
			return nil, fmt.Errorf("failed to import %s: %s", f.grid, strings.Join(result.Errors, "; "))
		}
		grid, warnings = result.Grid, result.Warnings
	}
	for _, w := range warnings {
		log.Warn().Str("file", f.grid).Msg(w)
	}

	opts.NoZwanzig = opts.NoZwanzig || f.noZwanzig
	opts.NoDreiviertel = opts.NoDreiviertel || f.noDreiviertel
	opts.NoMinuteDots = opts.NoMinuteDots || f.noMinuteDots

	layout, err := model.LayoutByName(f.layout, grid.Rows(), grid.Cols())
	if err != nil {
		return nil, err
	}
	s, err := session.New(grid, layout, opts)
	if err != nil {
		return nil, err
	}
	s.SetLogger(log.Logger)
	log.Debug().
		Int("rows", grid.Rows()).
		Int("cols", grid.Cols()).
		Str("layout", layout.Name).
		Msg("face loaded")
	return s, nil
}

// guard logs warnings and refuses to continue unless forced.
func guard(what string, warnings []string, force bool) error {
	for _, w := range warnings {
		log.Warn().Msg(w)
	}
	if len(warnings) > 0 && !force {
		return fmt.Errorf("%s: %d warning(s), use --force to write anyway", what, len(warnings))
	}
	return nil
}
