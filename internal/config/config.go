package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/polyglot-popup/internal/app"
	"github.com/atomicstack/polyglot-popup/internal/catalog"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

// File is the optional YAML config file. Store is a pointer so an explicit
// empty string can disable persistence.
type File struct {
	Host         string        `yaml:"host"`
	DevToolsURL  string        `yaml:"devtools_url"`
	Store        *string       `yaml:"store"`
	Codes        []string      `yaml:"codes"`
	Defaults     []string      `yaml:"defaults"`
	OpenInterval time.Duration `yaml:"open_interval"`
}

const (
	envConfig       = "POLYGLOT_POPUP_CONFIG"
	envHost         = "POLYGLOT_POPUP_HOST"
	envDevToolsURL  = "POLYGLOT_POPUP_DEVTOOLS_URL"
	envURL          = "POLYGLOT_POPUP_URL"
	envClipboard    = "POLYGLOT_POPUP_CLIPBOARD"
	envStore        = "POLYGLOT_POPUP_STORE"
	envCodes        = "POLYGLOT_POPUP_CODES"
	envDefaults     = "POLYGLOT_POPUP_DEFAULTS"
	envOpenInterval = "POLYGLOT_POPUP_OPEN_INTERVAL"
	envWidth        = "POLYGLOT_POPUP_WIDTH"
	envHeight       = "POLYGLOT_POPUP_HEIGHT"
	envShowFooter   = "POLYGLOT_POPUP_FOOTER"
	envVerbose      = "POLYGLOT_POPUP_VERBOSE"
	envTrace        = "POLYGLOT_POPUP_TRACE"
	envLogFile      = "POLYGLOT_POPUP_LOG_FILE"
)

const defaultOpenInterval = 100 * time.Millisecond

// DefaultStorePath is where the selection database lives unless overridden.
// It is empty when no user config directory can be determined.
func DefaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "polyglot-popup", "selection.db")
}

// LoadArgs parses configuration from CLI arguments and the environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("polyglot-popup", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a YAML config file")
	hostName := fs.String("host", envOrDefault(env, envHost, string(app.HostAuto)), "browser host: auto, chrome, system or none")
	devtools := fs.String("devtools-url", envOrDefault(env, envDevToolsURL, ""), "Chrome remote debugging endpoint (http or ws)")
	url := fs.String("url", envOrDefault(env, envURL, ""), "initial URL for the system host")
	clip := fs.Bool("clipboard", envOrBool(env, envClipboard, false), "read the initial URL from the clipboard")
	storePath := fs.String("store", envOrDefault(env, envStore, DefaultStorePath()), "SQLite file for the saved language selection (empty disables)")
	codes := fs.String("codes", envOrDefault(env, envCodes, ""), "comma separated codes replacing the built-in catalog")
	defaults := fs.String("defaults", envOrDefault(env, envDefaults, ""), "comma separated codes enabled on first use")
	interval := fs.Duration("open-interval", envOrDuration(env, envOpenInterval, defaultOpenInterval), "minimum delay between tab opens")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configPath != "" {
		file, err := LoadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		explicit := explicitSettings(fs, env)
		file.apply(explicit, hostName, devtools, storePath, codes, defaults, interval)
	}

	kind, err := app.ParseHostKind(*hostName)
	if err != nil {
		return Config{}, err
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Host:         kind,
			DevToolsURL:  strings.TrimSpace(*devtools),
			URL:          strings.TrimSpace(*url),
			Clipboard:    *clip,
			StorePath:    strings.TrimSpace(*storePath),
			Codes:        catalog.ParseList(*codes),
			Defaults:     catalog.ParseList(*defaults),
			OpenInterval: *interval,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		File: *configPath,
		Flags: map[string]string{
			"config":       *configPath,
			"host":         *hostName,
			"devtoolsURL":  *devtools,
			"url":          *url,
			"clipboard":    strconv.FormatBool(*clip),
			"store":        *storePath,
			"codes":        *codes,
			"defaults":     *defaults,
			"openInterval": interval.String(),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &f, nil
}

// apply fills in every setting neither a flag nor the environment provided.
func (f *File) apply(explicit map[string]bool, hostName, devtools, storePath, codes, defaults *string, interval *time.Duration) {
	if !explicit["host"] && f.Host != "" {
		*hostName = f.Host
	}
	if !explicit["devtools-url"] && f.DevToolsURL != "" {
		*devtools = f.DevToolsURL
	}
	if !explicit["store"] && f.Store != nil {
		*storePath = *f.Store
	}
	if !explicit["codes"] && len(f.Codes) > 0 {
		*codes = strings.Join(f.Codes, ",")
	}
	if !explicit["defaults"] && len(f.Defaults) > 0 {
		*defaults = strings.Join(f.Defaults, ",")
	}
	if !explicit["open-interval"] && f.OpenInterval > 0 {
		*interval = f.OpenInterval
	}
}

var flagEnv = map[string]string{
	"host":          envHost,
	"devtools-url":  envDevToolsURL,
	"store":         envStore,
	"codes":         envCodes,
	"defaults":      envDefaults,
	"open-interval": envOpenInterval,
}

func explicitSettings(fs *flag.FlagSet, env map[string]string) map[string]bool {
	explicit := make(map[string]bool, len(flagEnv))
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	for name, key := range flagEnv {
		if _, ok := env[key]; ok {
			explicit[name] = true
		}
	}
	return explicit
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

var (
	ErrMissingDevToolsURL = errors.New("chrome host needs a devtools url")
	ErrNegativeInterval   = errors.New("open interval must be >= 0")
)

// Validate checks the combination of settings that LoadArgs cannot check
// one flag at a time.
func Validate(cfg Config) error {
	if _, err := app.ParseHostKind(string(cfg.App.Host)); err != nil {
		return err
	}
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		return fmt.Errorf("size must be >= 0 (got %dx%d)", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.OpenInterval < 0 {
		return fmt.Errorf("%w (got %s)", ErrNegativeInterval, cfg.App.OpenInterval)
	}
	if cfg.App.Host == app.HostChrome && cfg.App.DevToolsURL == "" {
		return ErrMissingDevToolsURL
	}
	if _, err := cfg.App.Catalog(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}
