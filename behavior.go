package frpgtk

import (
	firm "github.com/davidroman0O/firm-go"
)

// Cell is the read side of a continuous value: a current value plus change
// notification. Both *firm.Signal and *firm.Memo satisfy it, so a widget
// attribute can follow a plain cell or a derived one the same way.
type Cell[T any] interface {
	Peek() T
	Subscribe(listener func(T)) func()
}

// newCell builds the value cell backing every bridge behavior. Equality
// suppression is disabled: each occurrence propagates even when it equals
// the current value, so attribute writes are never elided.
func newCell[T any](initial T) *firm.Signal[T] {
	cell := firm.NewSignal(initial)
	cell.SetEqualityFn(func(T, T) bool { return false })

	return cell
}

// Hold materializes an event stream into a behavior: the cell holds
// initial before the first occurrence and the latest occurrence after.
// Only the latest value is retained.
func Hold[T any](initial T, e *Event[T]) *firm.Signal[T] {
	cell := newCell(initial)
	e.Subscribe(cell.Set)

	return cell
}

// Changes is the inverse of Hold: a stream carrying each value the cell
// takes from now on. The returned function stops the stream.
//
// The listener this attaches to the cell is gated rather than removed:
// firm-go unsubscribes by the listener's code pointer, which every
// closure built from the same literal shares, so removal could detach a
// sibling stream on the same cell. Stopping leaves an inert listener
// behind instead.
func Changes[T any](cell Cell[T]) (*Event[T], func()) {
	out, push := NewEvent[T]()

	stopped := false
	cell.Subscribe(func(v T) {
		if !stopped {
			push(v)
		}
	})

	return out, func() { stopped = true }
}
