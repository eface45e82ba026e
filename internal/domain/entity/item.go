package entity

// ItemID uniquely identifies an item for the lifetime of its underlying value.
// Identity survives filtering and insertion; indexes do not.
type ItemID string

// Item is the descriptor a host registers for every option, tab or tree node.
type Item struct {
	ID       ItemID
	Label    string // Used for typeahead and completion matching
	Disabled bool
}

// NewItem creates an enabled item.
func NewItem(id ItemID, label string) Item {
	return Item{ID: id, Label: label}
}

// Enabled reports whether the item can be selected or reached by keyboard.
func (i Item) Enabled() bool {
	return !i.Disabled
}

// Items builds enabled items whose ID equals their label.
// Handy for static sources and tests.
func Items(labels ...string) []Item {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{ID: ItemID(label), Label: label}
	}
	return items
}
