package state

// Level tracks the cursor, filter, and viewport of one focusable list.
type Level struct {
	ID             string
	Items          []Item
	Full           []Item
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level over items.
func NewLevel(id string, items []Item) *Level {
	l := &Level{ID: id, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the visible position of the item with id, or -1.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the source list, keeping the cursor on the same id
// when it survives.
func (l *Level) UpdateItems(items []Item) {
	var keep string
	if cur, ok := l.Current(); ok {
		keep = cur.ID
	}
	l.Full = CloneItems(items)
	l.applyFilter()
	if keep != "" {
		if idx := l.IndexOf(keep); idx >= 0 {
			l.Cursor = idx
		}
	}
	if l.ViewportOffset > len(l.Items)-1 || l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}
