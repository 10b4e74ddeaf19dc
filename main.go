package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/polyglot-popup/internal/app"
	"github.com/atomicstack/polyglot-popup/internal/config"
	"github.com/atomicstack/polyglot-popup/internal/logging"
	"github.com/atomicstack/polyglot-popup/internal/logging/events"
)

const (
	exitOK     = 0
	exitRun    = 1
	exitConfig = 2
)

var runApp = app.Run

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr))
}

func run(args, environ []string, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTrace(cfg))

	if err := runApp(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRun
	}
	return exitOK
}

// startupPayload is the app.start trace entry.
type startupPayload struct {
	Argv       []string          `json:"argv"`
	Flags      map[string]string `json:"flags"`
	ConfigFile string            `json:"config_file,omitempty"`
	Host       string            `json:"host"`
	Trace      bool              `json:"trace"`
	LogFile    string            `json:"log_file"`
	Executable string            `json:"executable,omitempty"`
	Cwd        string            `json:"cwd,omitempty"`
	TTY        ttyDetails        `json:"tty"`
}

func startupTrace(cfg config.Config) startupPayload {
	payload := startupPayload{
		Argv:       cfg.Args,
		Flags:      cfg.Flags,
		ConfigFile: cfg.File,
		Host:       string(cfg.App.ResolvedHost()),
		Trace:      cfg.Logging.Trace,
		LogFile:    logging.Path(),
		TTY:        collectTTYDetails(),
	}
	if exe, err := os.Executable(); err == nil {
		payload.Executable = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload.Cwd = cwd
	}
	return payload
}

type ttyDetails struct {
	Detected string     `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals and
// their size. A popup launched by a multiplexer often has only some of them.
func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := ttyProbe{Name: stdName(f)}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			w, h, err := term.GetSize(fd)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = w, h
				if details.Detected == "" {
					details.Detected = probe.Name
				}
			}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func stdName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	default:
		return "stderr"
	}
}
