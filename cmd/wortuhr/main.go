// wortuhr — word-clock face toolkit
//
// Finds the clock words in a letter grid and turns the face into the files
// needed to build the clock: the C++ word table for the firmware, icon
// bitmaps, laser DXF drawings for the face and the divider strips, and
// printable sheets.
//
// Usage:
//
//	wortuhr [--config file] [--log-level level] <command> [flags]
//
// Build:
//
//	go build -o wortuhr ./cmd/wortuhr
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/project"
)

// env is what every command gets: the loaded config and the output stream.
type env struct {
	cfg    model.AppConfig
	stdout io.Writer
}

type command struct {
	summary string
	run     func(e *env, args []string) error
}

var commands = map[string]command{
	"resolve": {"print the placement of every clock word", runResolve},
	"script":  {"generate the C++ word table header", runScript},
	"icons":   {"generate the icon bitmap header", runIcons},
	"face":    {"write the face as laser DXF", runFace},
	"divider": {"write a divider strip as DXF and PDF", runDivider},
	"sheet":   {"write a printable PDF sheet of the face", runSheet},
	"report":  {"write the placements as XLSX or JSON", runReport},
	"import":  {"convert a CSV or Excel grid into a template", runImport},
	"inspect": {"summarise a DXF drawing", runInspect},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("wortuhr failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wortuhr", flag.ContinueOnError)
	fs.SetInterspersed(false)
	configPath := fs.String("config", project.DefaultConfigPath(), "Config file")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error); overrides the config")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := project.LoadAppConfig(*configPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if err := setLogLevel(level); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		usage(fs)
		return fmt.Errorf("no command given")
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		usage(fs)
		return fmt.Errorf("unknown command %q", name)
	}
	log.Debug().Str("command", name).Str("config", *configPath).Msg("starting")
	return cmd.run(&env{cfg: cfg, stdout: stdout}, fs.Args()[1:])
}

func setLogLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: wortuhr [global flags] <command> [flags]")
	fmt.Fprintln(os.Stderr, "\nCommands:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", n, commands[n].summary)
	}
	fmt.Fprintln(os.Stderr, "\nGlobal flags:")
	fs.PrintDefaults()
}
