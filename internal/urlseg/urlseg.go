// Package urlseg extracts and substitutes slash-delimited segments of a URL,
// either from its path or from the decoded value of the "item" query
// parameter. Every function is pure and never panics: parse failures surface
// as false, an empty segment list, or a sentinel error.
package urlseg

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ItemParam is the query parameter whose value is parsed in ModeQueryItem.
const ItemParam = "item"

var (
	ErrInvalidURL      = errors.New("invalid url")
	ErrNoSegments      = errors.New("no segments to replace")
	ErrIndexOutOfRange = errors.New("segment index out of range")
	ErrUnknownMode     = errors.New("unknown parse mode")
)

// Mode selects which part of a URL supplies the segments.
type Mode int

const (
	ModePath Mode = iota
	ModeQueryItem
)

func (m Mode) String() string {
	switch m {
	case ModePath:
		return "path"
	case ModeQueryItem:
		return "query-item"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

type strategy struct {
	segments func(u *url.URL) []string
	apply    func(u *url.URL, segments []string, index int, replacement string)
}

var strategies = map[Mode]strategy{
	ModePath:      {segments: pathSegments, apply: applyPath},
	ModeQueryItem: {segments: queryItemSegments, apply: applyQueryItem},
}

// schemes that require an authority component, mirroring the WHATWG list.
var specialSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ws":    {},
	"wss":   {},
	"ftp":   {},
}

func parse(text string) (*url.URL, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if _, special := specialSchemes[strings.ToLower(u.Scheme)]; special && u.Host == "" {
		return nil, false
	}
	return u, true
}

// IsValid reports whether text is an absolute URL.
func IsValid(text string) bool {
	_, ok := parse(text)
	return ok
}

// PathSegments returns the non-empty, percent-encoded components of the path.
func PathSegments(text string) []string {
	u, ok := parse(text)
	if !ok {
		return nil
	}
	return pathSegments(u)
}

// QueryItemSegments returns the non-empty components of the decoded "item"
// query parameter.
func QueryItemSegments(text string) []string {
	u, ok := parse(text)
	if !ok {
		return nil
	}
	return queryItemSegments(u)
}

// Segments dispatches to the parser for mode.
func Segments(text string, mode Mode) []string {
	u, ok := parse(text)
	if !ok {
		return nil
	}
	s, ok := strategies[mode]
	if !ok {
		return nil
	}
	return s.segments(u)
}

// HasQueryItem reports whether the "item" key is present, even when empty.
func HasQueryItem(text string) bool {
	u, ok := parse(text)
	if !ok {
		return false
	}
	_, present := u.Query()[ItemParam]
	return present
}

// Substitute replaces the segment at index with replacement and returns the
// re-serialised URL. Scheme, authority, fragment, and every component outside
// the active segment source are left untouched.
func Substitute(text string, mode Mode, index int, replacement string) (string, error) {
	u, ok := parse(text)
	if !ok {
		return "", ErrInvalidURL
	}
	s, ok := strategies[mode]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	segments := s.segments(u)
	if len(segments) == 0 {
		return "", ErrNoSegments
	}
	if index < 0 || index >= len(segments) {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(segments))
	}
	updated := make([]string, len(segments))
	copy(updated, segments)
	s.apply(u, updated, index, replacement)
	return u.String(), nil
}

func splitSegments(p string) []string {
	var out []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func pathSegments(u *url.URL) []string {
	if u.Opaque != "" {
		return nil
	}
	return splitSegments(u.EscapedPath())
}

func queryItemSegments(u *url.URL) []string {
	value := u.Query().Get(ItemParam)
	if value == "" {
		return nil
	}
	return splitSegments(value)
}

// applyPath works on the escaped form so untouched segments keep their bytes.
func applyPath(u *url.URL, segments []string, index int, replacement string) {
	segments[index] = url.PathEscape(replacement)
	escaped := "/" + strings.Join(segments, "/")
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		decoded = escaped
	}
	u.Path = decoded
	u.RawPath = escaped
}

func applyQueryItem(u *url.URL, segments []string, index int, replacement string) {
	segments[index] = replacement
	u.RawQuery = replaceQueryValue(u.RawQuery, ItemParam, "/"+strings.Join(segments, "/"))
}

// replaceQueryValue rewrites the first pair named key and drops later
// duplicates. All other pairs keep their raw bytes and position.
func replaceQueryValue(raw, key, value string) string {
	pairs := strings.Split(raw, "&")
	out := make([]string, 0, len(pairs))
	replaced := false
	for _, pair := range pairs {
		name := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			name = pair[:i]
		}
		if decoded, err := url.QueryUnescape(name); err == nil && decoded == key {
			if replaced {
				continue
			}
			out = append(out, url.QueryEscape(key)+"="+url.QueryEscape(value))
			replaced = true
			continue
		}
		out = append(out, pair)
	}
	return strings.Join(out, "&")
}
