// Package frpgtk binds the firm-go reactive library to GTK4's widget and
// signal system. Toolkit signals become event streams, event streams fold
// into value cells, and cells flow back into widget attributes, so
// application code describes its UI with FRP primitives instead of
// imperative callbacks.
//
// Everything here runs on GTK's single UI goroutine. Use [Post] to reach
// it from anywhere else.
package frpgtk

import (
	"os"
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/petermattis/goid"
)

var (
	started     atomic.Bool
	uiGoroutine atomic.Int64
)

// Main starts the combined toolkit and reactive main loop and blocks until
// the application exits, returning the process exit code. It may be called
// only once per process. activate runs on the UI goroutine once the
// toolkit is up.
func Main(appID string, activate func(*gtk.Application)) int {
	if !started.CompareAndSwap(false, true) {
		panic("frpgtk: Main started twice")
	}

	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)
	app.ConnectActivate(func() {
		uiGoroutine.Store(goid.Get())
		activate(app)
	})

	return app.Run(os.Args)
}

// Post schedules fn to run on the UI goroutine without blocking. It is the
// one entry point that is safe to call from any goroutine.
func Post(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// mustUI panics when a bridge entry point is used off the UI goroutine.
// Before Main has handed control to the toolkit there is nothing to guard.
func mustUI() {
	ui := uiGoroutine.Load()
	if ui != 0 && ui != goid.Get() {
		panic("frpgtk: called off the UI goroutine, use Post")
	}
}
