// Package logging appends errors and, when enabled, JSON trace entries to a
// single log file. A popup owns the terminal, so nothing is written to it.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const logName = "polyglot-popup.log"

type sink struct {
	mu    sync.Mutex
	path  string
	trace bool
}

var out = &sink{path: defaultPath()}

// defaultPath prefers the user cache directory and falls back to the
// working directory.
func defaultPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "polyglot-popup", logName)
	}
	return logName
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	PID     int         `json:"pid"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Error appends err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	out.write(func(f *os.File) error {
		log.New(f, fmt.Sprintf("[%d] ", os.Getpid()), log.LstdFlags).Println(err)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	out.mu.Lock()
	out.trace = enabled
	out.mu.Unlock()
}

func TraceEnabled() bool {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.trace
}

// Trace appends one JSON line when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := traceEntry{
		Time:    time.Now().UTC(),
		PID:     os.Getpid(),
		Event:   event,
		Payload: payload,
	}
	out.write(func(f *os.File) error {
		return json.NewEncoder(f).Encode(entry)
	})
}

// Configure sets the log destination. An empty path restores the default.
// Missing directories are created on first write.
func Configure(path string) {
	out.mu.Lock()
	defer out.mu.Unlock()
	if strings.TrimSpace(path) == "" {
		out.path = defaultPath()
		return
	}
	out.path = path
}

// Path returns the current log destination.
func Path() string {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.path
}

// write drops the entry when the file cannot be opened.
func (s *sink) write(fn func(*os.File) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_ = fn(f)
}
