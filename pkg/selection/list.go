package selection

import "errors"

var (
	ErrEmpty = errors.New("list must have at least one item")
)

type Item struct {
	Label    string `json:"label" yaml:"label"`
	Selected bool   `json:"selected" yaml:"selected"`
}

// List is a fixed-size sequence of items with a cursor that always points at one of them
type List struct {
	items  []Item
	cursor int
}

// New creates a list with one unselected item per label and the cursor on the first one
func New(labels []string) (*List, error) {
	if len(labels) == 0 {
		return nil, ErrEmpty
	}
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Item{Label: l}
	}
	return &List{items: items}, nil
}

// Toggle flips the selected state of the item under the cursor
func (l *List) Toggle() {
	l.items[l.cursor].Selected = !l.items[l.cursor].Selected
}

// Move shifts the cursor by offset, wrapping around both ends
func (l *List) Move(offset int) {
	l.cursor = mod(l.cursor+offset, len(l.items))
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) Cursor() int {
	return l.cursor
}

func (l *List) Current() Item {
	return l.items[l.cursor]
}

// Items returns a copy of all items in order
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Selected returns the selected items, keeping list order
func (l *List) Selected() []Item {
	out := []Item{}
	for _, it := range l.items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

func (l *List) SelectedCount() int {
	n := 0
	for _, it := range l.items {
		if it.Selected {
			n++
		}
	}
	return n
}

// mod is the non-negative remainder, so -1 wraps to n-1
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
