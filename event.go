package frpgtk

import "slices"

// Event is a discrete stream of values, usually fed by a toolkit signal.
// Occurrences reach subscribers in emission order, and subscribers are
// invoked in subscription order (FIFO per source).
type Event[T any] struct {
	subs []*eventSub[T]
}

type eventSub[T any] struct {
	fn func(T)
}

// NewEvent creates a fresh event stream along with its push sink.
func NewEvent[T any]() (*Event[T], func(T)) {
	e := &Event[T]{}
	return e, e.push
}

func (e *Event[T]) push(v T) {
	// clone: a subscriber may cancel or subscribe during delivery
	for _, s := range slices.Clone(e.subs) {
		if s.fn != nil {
			s.fn(v)
		}
	}
}

// Subscribe registers fn for every subsequent occurrence. The returned
// function cancels the subscription; cancelling during a delivery also
// suppresses the occurrence still in flight.
func (e *Event[T]) Subscribe(fn func(T)) func() {
	s := &eventSub[T]{fn: fn}
	e.subs = append(e.subs, s)

	return func() {
		s.fn = nil
		if i := slices.Index(e.subs, s); i >= 0 {
			e.subs = slices.Delete(e.subs, i, i+1)
		}
	}
}

// SubscribeOnce registers fn for the next occurrence only.
func (e *Event[T]) SubscribeOnce(fn func(T)) func() {
	var cancel func()
	cancel = e.Subscribe(func(v T) {
		cancel()
		fn(v)
	})

	return cancel
}

// Before returns the occurrences of e strictly before the first occurrence
// of stop. Once stop fires, nothing is delivered anymore, not even values
// emitted later in the same dispatch.
func Before[T, U any](e *Event[T], stop *Event[U]) *Event[T] {
	out, push := NewEvent[T]()
	cancel := e.Subscribe(push)
	stop.SubscribeOnce(func(U) { cancel() })

	return out
}
