package frpgtk

import (
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
)

// ConnectEvent converts a named toolkit signal into an event stream with
// no payload. The second return value disconnects the native handler; the
// registration otherwise lives until the object is destroyed.
func ConnectEvent(obj coreglib.Objector, signal string) (*Event[struct{}], func()) {
	mustUI()

	out, push := NewEvent[struct{}]()
	object := coreglib.BaseObject(obj)
	handle := object.Connect(signal, func() { push(struct{}{}) })

	return out, func() { object.HandlerDisconnect(handle) }
}

// ConnectValue converts a named toolkit signal into an event stream that
// carries sample() at each emission. sample is the adaptation from the
// native callback to a value, typically reading the attribute the signal
// reports on: the entry text for "changed", the toggle state for
// "toggled".
func ConnectValue[T any](obj coreglib.Objector, signal string, sample func() T) (*Event[T], func()) {
	mustUI()

	out, push := NewEvent[T]()
	object := coreglib.BaseObject(obj)
	handle := object.Connect(signal, func() { push(sample()) })

	return out, func() { object.HandlerDisconnect(handle) }
}
