package app

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/atomicstack/polyglot-popup/internal/catalog"
	"github.com/atomicstack/polyglot-popup/internal/host/store"
	"github.com/atomicstack/polyglot-popup/internal/host/system"
)

func TestParseHostKind(t *testing.T) {
	cases := map[string]HostKind{
		"":        HostAuto,
		"auto":    HostAuto,
		" Chrome": HostChrome,
		"system":  HostSystem,
		"NONE":    HostNone,
	}
	for raw, want := range cases {
		got, err := ParseHostKind(raw)
		if err != nil {
			t.Fatalf("ParseHostKind(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseHostKind(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseHostKind("safari"); !errors.Is(err, ErrUnknownHost) {
		t.Fatalf("expected ErrUnknownHost, got %v", err)
	}
}

func TestResolvedHost(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want HostKind
	}{
		{"nothing configured", Config{Host: HostAuto}, HostNone},
		{"devtools wins", Config{DevToolsURL: "http://127.0.0.1:9222", URL: "https://a.example/x"}, HostChrome},
		{"fixed url", Config{Host: HostAuto, URL: "https://a.example/x"}, HostSystem},
		{"clipboard", Config{Clipboard: true}, HostSystem},
		{"explicit kind kept", Config{Host: HostNone, DevToolsURL: "http://127.0.0.1:9222"}, HostNone},
	}
	for _, tc := range cases {
		if got := tc.cfg.ResolvedHost(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCatalogFallsBackToBuiltin(t *testing.T) {
	cat, err := Config{}.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if !reflect.DeepEqual(cat.Full(), catalog.Builtin) {
		t.Fatalf("expected builtin codes, got %v", cat.Full())
	}

	cat, err = Config{Codes: []string{"de", "fr"}, Defaults: []string{"fr"}}.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if !reflect.DeepEqual(cat.Defaults(), []string{"fr"}) {
		t.Fatalf("unexpected defaults %v", cat.Defaults())
	}
}

func TestOpenHostNoneIsStandalone(t *testing.T) {
	env, err := openHost(HostNone, Config{StorePath: filepath.Join(t.TempDir(), "sel.db")})
	if err != nil {
		t.Fatalf("openHost: %v", err)
	}
	defer env.close()
	if !env.caps.Standalone() {
		t.Fatalf("expected standalone capabilities, got %v", env.caps.Names())
	}
}

func TestOpenHostSystemWithFixedURLAndStore(t *testing.T) {
	cfg := Config{
		URL:       " https://example.com/de/a ",
		StorePath: filepath.Join(t.TempDir(), "nested", "sel.db"),
	}
	env, err := openHost(HostSystem, cfg)
	if err != nil {
		t.Fatalf("openHost: %v", err)
	}
	defer env.close()

	if got := env.caps.Names(); !reflect.DeepEqual(got, []string{"tabs", "store", "opener"}) {
		t.Fatalf("unexpected capabilities %v", got)
	}
	if _, ok := env.caps.Tabs.(system.Fixed); !ok {
		t.Fatalf("expected fixed url source, got %T", env.caps.Tabs)
	}
	url, err := env.caps.Tabs.ActiveTabURL(context.Background())
	if err != nil || url != "https://example.com/de/a" {
		t.Fatalf("unexpected active tab %q, %v", url, err)
	}
	if _, ok := env.caps.Store.(*store.Store); !ok {
		t.Fatalf("expected sqlite store, got %T", env.caps.Store)
	}
}

func TestOpenHostSystemWithoutSource(t *testing.T) {
	env, err := openHost(HostSystem, Config{})
	if err != nil {
		t.Fatalf("openHost: %v", err)
	}
	defer env.close()
	if env.caps.Tabs != nil || env.caps.Opener == nil {
		t.Fatalf("expected opener-only host, got %v", env.caps.Names())
	}
}

func TestOpenHostRejectsUnknownKind(t *testing.T) {
	if _, err := openHost("lynx", Config{}); !errors.Is(err, ErrUnknownHost) {
		t.Fatalf("expected ErrUnknownHost, got %v", err)
	}
}
