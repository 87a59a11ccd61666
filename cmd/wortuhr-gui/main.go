// Wortuhr — word-clock face editor
//
// A cross-platform desktop application for laying out the letter face of a
// word clock, checking that every clock word can be lit and exporting the
// firmware word table and the laser drawings.
//
// Build:
//   go build -o wortuhr-gui ./cmd/wortuhr-gui
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o wortuhr-gui.exe ./cmd/wortuhr-gui
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/project"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/ui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		log.Warn().Err(err).Str("config", configPath).Msg("using default settings")
		cfg, _ = project.LoadAppConfig("")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}

	application := app.NewWithID("de.miklesoft.wortuhr")
	window := application.NewWindow("Wortuhr — Word Clock Face Editor")

	appUI, err := ui.NewApp(application, window, cfg, configPath, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1100, 760))
	window.CenterOnScreen()
	window.ShowAndRun()
}
