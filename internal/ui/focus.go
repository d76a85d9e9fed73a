package ui

// FocusRing tracks which activatable element (button or link) has focus.
type FocusRing struct {
	Current string   // ID of the focused element
	Order   []string // Tab order
}

// NewFocusRing focuses the first element of order.
func NewFocusRing(order []string) *FocusRing {
	f := &FocusRing{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus forward, wrapping around. Returns the new focus ID.
func (f *FocusRing) Next() string {
	return f.move(1)
}

// Prev moves focus backward, wrapping around.
func (f *FocusRing) Prev() string {
	return f.move(-1)
}

func (f *FocusRing) move(step int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index()
	if idx < 0 {
		// Unknown current: forward lands on first, backward on last.
		if step > 0 {
			idx = n - 1
		} else {
			idx = 0
		}
	}
	f.Current = f.Order[(idx+step+n)%n]
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in the ring.
func (f *FocusRing) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.Current = id
			return true
		}
	}
	return false
}

// IsFocused reports whether id has focus.
func (f *FocusRing) IsFocused(id string) bool {
	return f.Current != "" && f.Current == id
}

func (f *FocusRing) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}
