// Package catalog holds the replacement codes offered by the popup: the full
// set shown as toggles and the default subset enabled on first use.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	ErrEmptyCatalog = errors.New("catalog has no codes")
	ErrInvalidCode  = errors.New("invalid replacement code")
	ErrNotInCatalog = errors.New("default code not in catalog")
)

// Builtin is the code list used when no override is configured.
var Builtin = []string{"en", "fr", "es", "zh", "ja", "it", "ru", "nl", "pl", "de"}

// Catalog is immutable once constructed.
type Catalog struct {
	full     []string
	defaults []string
	index    map[string]int
}

// Default returns the built-in catalog, whose default subset is the full set.
func Default() *Catalog {
	c, err := New(Builtin, nil)
	if err != nil {
		panic(err)
	}
	return c
}

// New validates full and defaults. An empty defaults list selects every code.
func New(full, defaults []string) (*Catalog, error) {
	codes := Normalize(full)
	if len(codes) == 0 {
		return nil, ErrEmptyCatalog
	}
	for _, code := range codes {
		if err := validateCode(code); err != nil {
			return nil, err
		}
	}
	index := make(map[string]int, len(codes))
	for i, code := range codes {
		index[code] = i
	}
	subset := Normalize(defaults)
	if len(subset) == 0 {
		subset = append([]string(nil), codes...)
	}
	for _, code := range subset {
		if _, ok := index[code]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotInCatalog, code)
		}
	}
	return &Catalog{full: codes, defaults: subset, index: index}, nil
}

// Normalize trims entries, drops blanks, and removes duplicates keeping the
// first occurrence.
func Normalize(codes []string) []string {
	trimmed := lo.FilterMap(codes, func(code string, _ int) (string, bool) {
		code = strings.TrimSpace(code)
		return code, code != ""
	})
	return lo.Uniq(trimmed)
}

// ParseList splits a comma separated list of codes.
func ParseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return Normalize(strings.Split(raw, ","))
}

func validateCode(code string) error {
	if strings.ContainsAny(code, "/?#&= \t") {
		return fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return nil
}

func (c *Catalog) Full() []string     { return append([]string(nil), c.full...) }
func (c *Catalog) Defaults() []string { return append([]string(nil), c.defaults...) }
func (c *Catalog) Len() int           { return len(c.full) }

// Contains reports whether code belongs to the full set.
func (c *Catalog) Contains(code string) bool {
	_, ok := c.index[code]
	return ok
}

// Index returns the catalog position of code or -1.
func (c *Catalog) Index(code string) int {
	if i, ok := c.index[code]; ok {
		return i
	}
	return -1
}

// Name returns the English display name of code when it is a BCP 47 tag
// known to x/text, otherwise "".
func Name(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}
