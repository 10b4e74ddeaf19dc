package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/polyglot-popup/internal/app"
	"github.com/atomicstack/polyglot-popup/internal/config"
	"github.com/atomicstack/polyglot-popup/internal/logging"
)

func stubRunApp(t *testing.T, fn func(app.Config) error) {
	t.Helper()
	prev := runApp
	runApp = fn
	t.Cleanup(func() { runApp = prev })
}

func quietLog(t *testing.T) []string {
	t.Helper()
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})
	return []string{"POLYGLOT_POPUP_LOG_FILE=" + filepath.Join(t.TempDir(), "popup.log")}
}

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTraceIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Host:        app.HostAuto,
			DevToolsURL: "http://127.0.0.1:9222",
		},
		Logging: config.Logging{Trace: true},
		File:    "popup.yaml",
		Flags: map[string]string{
			"devtoolsURL": "http://127.0.0.1:9222",
			"width":       "80",
		},
		Args: []string{"--devtools-url", "http://127.0.0.1:9222"},
	}

	payload := startupTrace(cfg)

	if payload.Flags["devtoolsURL"] != "http://127.0.0.1:9222" || payload.Flags["width"] != "80" {
		t.Fatalf("unexpected flags %v", payload.Flags)
	}
	if payload.Host != "chrome" {
		t.Fatalf("expected resolved host chrome, got %q", payload.Host)
	}
	if !payload.Trace || payload.ConfigFile != "popup.yaml" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if len(payload.Argv) != 2 || len(payload.TTY.Probes) != 3 {
		t.Fatalf("unexpected argv/tty %+v", payload)
	}
}

func TestRunConfigErrorExitsTwo(t *testing.T) {
	stubRunApp(t, func(app.Config) error {
		t.Fatalf("app must not start on config error")
		return nil
	})
	var stderr strings.Builder
	if code := run([]string{"--host", "chrome"}, quietLog(t), &stderr); code != exitConfig {
		t.Fatalf("expected exit %d, got %d", exitConfig, code)
	}
	if !strings.Contains(stderr.String(), "Configuration error") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunAppErrorExitsOne(t *testing.T) {
	stubRunApp(t, func(app.Config) error { return errors.New("no terminal") })
	var stderr strings.Builder
	if code := run(nil, quietLog(t), &stderr); code != exitRun {
		t.Fatalf("expected exit %d, got %d", exitRun, code)
	}
	if !strings.Contains(stderr.String(), "no terminal") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunPassesAppConfig(t *testing.T) {
	var got app.Config
	stubRunApp(t, func(cfg app.Config) error {
		got = cfg
		return nil
	})
	var stderr strings.Builder
	code := run([]string{"--url", "https://example.com/de/x", "--store", "", "--footer"}, quietLog(t), &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (%s)", code, stderr.String())
	}
	if got.ResolvedHost() != app.HostSystem || got.URL != "https://example.com/de/x" || !got.ShowFooter {
		t.Fatalf("unexpected app config %+v", got)
	}
}
