package session

import (
	"github.com/samber/lo"

	"github.com/atomicstack/polyglot-popup/internal/catalog"
)

// Selection is an insertion-ordered set of replacement codes. Iteration order
// is the order codes were enabled in, which is also the order tabs open in.
type Selection struct {
	codes []string
	set   map[string]struct{}
}

// NewSelection builds a selection from codes, dropping blanks and duplicates.
func NewSelection(codes []string) *Selection {
	s := &Selection{}
	s.Replace(codes)
	return s
}

// Replace swaps the whole membership for codes.
func (s *Selection) Replace(codes []string) {
	s.codes = catalog.Normalize(codes)
	s.set = make(map[string]struct{}, len(s.codes))
	for _, code := range s.codes {
		s.set[code] = struct{}{}
	}
}

// Has reports membership.
func (s *Selection) Has(code string) bool {
	_, ok := s.set[code]
	return ok
}

// Toggle flips membership and reports whether code is now enabled.
func (s *Selection) Toggle(code string) bool {
	if s.Has(code) {
		s.codes = lo.Without(s.codes, code)
		delete(s.set, code)
		return false
	}
	s.codes = append(s.codes, code)
	s.set[code] = struct{}{}
	return true
}

// Codes returns the members in iteration order.
func (s *Selection) Codes() []string {
	return append([]string(nil), s.codes...)
}

func (s *Selection) Len() int    { return len(s.codes) }
func (s *Selection) Empty() bool { return len(s.codes) == 0 }
