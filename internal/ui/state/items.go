package state

// Item is one selectable row: a segment token or a replacement code.
type Item struct {
	ID    string
	Label string
	// Index is the position in the unfiltered source list.
	Index int
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
