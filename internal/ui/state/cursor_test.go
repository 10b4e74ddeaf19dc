package state

import "testing"

func newTestLevel(ids ...string) *Level {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: id, Index: i}
	}
	return NewLevel("test", items)
}

func TestMoveCursorClamps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if l.MoveCursor(-1) {
		t.Fatalf("expected no movement above the first item")
	}
	if !l.MoveCursor(5) {
		t.Fatalf("expected movement towards the end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", l.Cursor)
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected cursor home, got %d", l.Cursor)
	}
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected cursor end, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursor(1) {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestSetCursor(t *testing.T) {
	l := newTestLevel("a", "b")
	if !l.SetCursor(1) {
		t.Fatalf("expected cursor move")
	}
	if l.SetCursor(1) || l.SetCursor(2) || l.SetCursor(-1) {
		t.Fatalf("expected same or out of range positions refused")
	}
	if cur, ok := l.Current(); !ok || cur.ID != "b" {
		t.Fatalf("expected current b, got %#v", cur)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	l.Cursor = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", l.ViewportOffset)
	}
	start, items := l.Visible(3)
	if start != 0 || len(items) != 3 {
		t.Fatalf("unexpected window %d %d", start, len(items))
	}
}

func TestUpdateItemsKeepsCursorOnSameID(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	l.UpdateItems([]Item{{ID: "c", Label: "c"}, {ID: "a", Label: "a"}})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor to follow c, got %d", l.Cursor)
	}
	l.UpdateItems(nil)
	if l.Cursor != 0 || len(l.Items) != 0 {
		t.Fatalf("expected empty level reset")
	}
}
