package state

import (
	"reflect"
	"testing"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two")

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}

	level.SetFilter("")
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestAppendAndDeleteFilter(t *testing.T) {
	level := newTestLevel("alpha", "beta")
	if !level.AppendFilter("al") || level.Filter != "al" {
		t.Fatalf("unexpected filter %q", level.Filter)
	}
	if level.AppendFilter("") {
		t.Fatalf("expected empty append refused")
	}
	if !level.DeleteFilterRune() || level.Filter != "a" {
		t.Fatalf("unexpected filter after backspace %q", level.Filter)
	}
	level.SetFilter("fr fre")
	if !level.DeleteFilterWord() || level.Filter != "fr " {
		t.Fatalf("unexpected filter after word delete %q", level.Filter)
	}
	if !level.ClearFilter() || level.ClearFilter() {
		t.Fatalf("expected clear once")
	}
	if level.DeleteFilterRune() || level.DeleteFilterWord() {
		t.Fatalf("expected nothing to delete")
	}
}

func TestFilterItemsMatchesCodeAndName(t *testing.T) {
	items := []Item{
		{ID: "fr", Label: "FR French", Index: 0},
		{ID: "de", Label: "DE German", Index: 1},
		{ID: "nl", Label: "NL Dutch", Index: 2},
	}
	got := FilterItems(items, "germ")
	if len(got) != 1 || got[0].ID != "de" {
		t.Fatalf("expected german only, got %#v", got)
	}
	got = FilterItems(items, "  ")
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected blank filter to keep everything")
	}
	if got := FilterItems(items, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestBestMatchIndexPrefersID(t *testing.T) {
	items := []Item{
		{ID: "en", Label: "EN English"},
		{ID: "es", Label: "ES Spanish"},
		{ID: "de", Label: "DE German"},
	}
	if idx := BestMatchIndex(items, "es"); idx != 1 {
		t.Fatalf("expected exact id match, got %d", idx)
	}
	if idx := BestMatchIndex(items, "d"); idx != 2 {
		t.Fatalf("expected id prefix match, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for empty list, got %d", idx)
	}
}
