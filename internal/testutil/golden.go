package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// AssertGolden compares got with testdata/<name> under the module root.
// Run with UPDATE_GOLDEN=1 to rewrite the file from got.
func AssertGolden(t *testing.T, name, got string) {
	t.Helper()
	root, err := moduleRoot()
	if err != nil {
		t.Fatalf("golden %s: %v", name, err)
	}
	path := filepath.Join(root, "testdata", name)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("golden %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("golden %s: %v", name, err)
		}
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("golden %s: %v", name, err)
	}
	if string(want) != got {
		t.Fatalf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", name, want, got)
	}
}

var errNoModule = errors.New("no go.mod above working directory")

// moduleRoot walks up from the working directory to the nearest go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errNoModule
		}
		dir = parent
	}
}
