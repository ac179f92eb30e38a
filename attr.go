package frpgtk

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Bind synchronizes a widget attribute with a behavior. The attribute is
// written immediately with the cell's current value, then rewritten (with
// a redraw request) on every subsequent change until the widget is
// destroyed. Equal values are written too, not elided.
func Bind[T any](w gtk.Widgetter, cell Cell[T], set func(T)) {
	mustUI()

	base := gtk.BaseWidget(w)
	bindCell(cell, set,
		func(teardown func()) { base.ConnectDestroy(teardown) },
		base.QueueDraw,
	)
}

// bindCell is the toolkit-free core of Bind. onTeardown hooks teardown to
// the widget's destruction; redraw requests a repaint after each write.
// Changes delivered at or after teardown are dropped, including one
// already in flight when teardown fires. The cell is observed through
// Changes, never through a firm-go unsubscribe, so tearing down one
// binding cannot detach another binding on the same cell.
func bindCell[T any](cell Cell[T], set func(T), onTeardown func(func()), redraw func()) {
	set(cell.Peek())

	changes, stop := Changes(cell)
	onTeardown(stop)

	changes.Subscribe(func(v T) {
		set(v)
		redraw()
	})
}
