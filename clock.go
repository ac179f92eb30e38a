package frpgtk

import (
	"time"
	"weak"

	firm "github.com/davidroman0O/firm-go"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// Clock returns a behavior holding the seconds elapsed since the call,
// updated at most once per period by a GLib timeout source. Periods under
// a millisecond, zero and negative ones included, are raised to one
// millisecond, GLib's timeout resolution.
//
// The source holds only a weak reference to the cell. Once every consumer
// drops the cell and the GC reclaims it, the next tick cancels the source
// permanently, so an abandoned clock cannot keep its timer alive.
func Clock(period time.Duration) *firm.Signal[float64] {
	mustUI()

	cell := detachedCell(0.0)
	ref := weak.Make(cell)
	start := time.Now()

	glib.TimeoutAdd(clockInterval(period), func() bool {
		return clockTick(ref, start)
	})

	return cell
}

// clockInterval converts a period to the milliseconds handed to GLib,
// raising anything under a millisecond so a zero (or negative, which
// would wrap the uint) interval never reaches the source.
func clockInterval(period time.Duration) uint {
	if period < time.Millisecond {
		period = time.Millisecond
	}

	return uint(period.Milliseconds())
}

// clockTick pushes the elapsed time into the cell behind ref and reports
// whether the source should keep running. The first failed resolve returns
// false, GLib removes the source, and no further tick ever occurs.
func clockTick(ref weak.Pointer[firm.Signal[float64]], start time.Time) bool {
	cell := ref.Value()
	if cell == nil {
		return false
	}

	cell.Set(time.Since(start).Seconds())
	return true
}

// detachedCell creates a cell owned solely by its consumers. firm-go
// registers every signal in the active context, which would retain the
// cell forever; creating it under a root and disposing the root right
// away unhooks it, so the weak reference in the timeout source is the
// only path left besides the callers'. Disposal just nils the listener
// slice, which later Subscribe calls rebuild.
func detachedCell[T any](initial T) *firm.Signal[T] {
	var cell *firm.Signal[T]

	dispose := firm.CreateRoot(func() {
		cell = firm.NewSignal(initial)
		cell.SetEqualityFn(func(T, T) bool { return false })
	})
	dispose()

	return cell
}
