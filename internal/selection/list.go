// Package selection provides an ordered list with a single, bounded cursor.
package selection

// List is an ordered sequence of items with at most one selected index.
// The selection is unset iff the list is empty. The zero value is an
// empty list.
type List[T any] struct {
	items    []T
	selected int // -1 when unset
}

func (l *List[T]) valid() bool {
	return l.selected >= 0 && l.selected < len(l.items)
}

// New creates a list selecting the first item, if any.
func New[T any](items []T) *List[T] {
	l := &List[T]{items: items, selected: -1}
	if len(items) > 0 {
		l.selected = 0
	}
	return l
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns the underlying items. Callers must not modify them.
func (l *List[T]) Items() []T {
	return l.items
}

// Selected returns the selected index.
func (l *List[T]) Selected() (int, bool) {
	if !l.valid() {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the selected item.
func (l *List[T]) SelectedItem() (T, bool) {
	var zero T
	if !l.valid() {
		return zero, false
	}
	return l.items[l.selected], true
}

// MoveUp moves the selection one item towards the start, stopping at the
// first item. An unset selection on a non-empty list snaps to the first item.
func (l *List[T]) MoveUp() {
	if len(l.items) == 0 {
		return
	}
	if !l.valid() {
		l.selected = 0
		return
	}
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection one item towards the end, stopping at the
// last item. An unset selection on a non-empty list snaps to the first item.
func (l *List[T]) MoveDown() {
	if len(l.items) == 0 {
		return
	}
	if !l.valid() {
		l.selected = 0
		return
	}
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// Select moves the selection to index i. Out-of-range indices are ignored.
func (l *List[T]) Select(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.selected = i
	return true
}

// Clear unsets the selection.
func (l *List[T]) Clear() {
	l.selected = -1
}
