package state

// MoveCursor moves the cursor by delta, clamped to the item range.
func (l *Level) MoveCursor(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(l.Cursor+delta, 0, len(l.Items)-1)
	return l.Cursor != old
}

// SetCursor places the cursor on idx when it is in range.
func (l *Level) SetCursor(idx int) bool {
	if idx < 0 || idx >= len(l.Items) || idx == l.Cursor {
		return false
	}
	l.Cursor = idx
	return true
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.MoveCursor(-len(l.Items))
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.MoveCursor(len(l.Items))
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays within
// maxVisible rows.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor > l.ViewportOffset+maxVisible-1 {
		l.ViewportOffset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
}

// Visible returns the window of items starting at the viewport offset.
func (l *Level) Visible(maxVisible int) (int, []Item) {
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return 0, l.Items
	}
	l.EnsureCursorVisible(maxVisible)
	start := l.ViewportOffset
	return start, l.Items[start : start+maxVisible]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
