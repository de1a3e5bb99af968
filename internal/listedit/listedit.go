// Package listedit provides a generic ordered-list editor for
// array-valued form fields (images, highlights, amenities, itinerary
// days).  Every admin entity form shares this one abstraction instead
// of duplicating ad hoc add/remove/reorder code per field.
package listedit

import "errors"

// ErrFull is returned by Append when the list is at capacity.
var ErrFull = errors.New("list is at maximum capacity")

// ErrIndex is returned when an index is outside the list bounds.
var ErrIndex = errors.New("index out of range")

// List is an ordered list of form values with an optional capacity.
// The zero value is unusable; construct with New.
type List[T any] struct {
	items []T
	max   int // 0 means unbounded
}

// New builds a list editor seeded with items.  max caps the item
// count; pass 0 for no cap.  The seed slice is copied.
func New[T any](items []T, max int) *List[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &List[T]{items: cp, max: max}
}

// Items returns a copy of the current ordering.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the current item count.
func (l *List[T]) Len() int { return len(l.items) }

// Append adds v to the end of the list.  It fails with ErrFull when
// the cap is reached.
func (l *List[T]) Append(v T) error {
	if l.max > 0 && len(l.items) >= l.max {
		return ErrFull
	}
	l.items = append(l.items, v)
	return nil
}

// RemoveAt deletes the item at i, shifting later items down.
func (l *List[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndex
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// MoveUp swaps the item at i with its predecessor.  Moving the first
// item up is a no-op rather than an error, matching up-button UX.
func (l *List[T]) MoveUp(i int) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndex
	}
	if i == 0 {
		return nil
	}
	l.items[i-1], l.items[i] = l.items[i], l.items[i-1]
	return nil
}

// MoveDown swaps the item at i with its successor.  Moving the last
// item down is a no-op.
func (l *List[T]) MoveDown(i int) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndex
	}
	if i == len(l.items)-1 {
		return nil
	}
	l.items[i], l.items[i+1] = l.items[i+1], l.items[i]
	return nil
}

// Reorder moves the item at from to position to, shifting the items
// in between.  This is the drag-and-drop primitive.
func (l *List[T]) Reorder(from, to int) error {
	n := len(l.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndex
	}
	if from == to {
		return nil
	}
	v := l.items[from]
	rest := append(l.items[:from], l.items[from+1:]...)
	l.items = append(rest[:to], append([]T{v}, rest[to:]...)...)
	return nil
}
