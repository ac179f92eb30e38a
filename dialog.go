package frpgtk

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// FileChoice is the outcome of a file dialog: the selected path when OK is
// set, the zero value when the dialog was dismissed.
type FileChoice struct {
	Path string
	OK   bool
}

// OpenFileDialog shows a native file chooser over parent. The returned
// event fires exactly once with the user's choice.
func OpenFileDialog(parent *gtk.Window, title string) *Event[FileChoice] {
	mustUI()

	choice, push := NewEvent[FileChoice]()

	chooser := gtk.NewFileChooserNative(title, parent, gtk.FileChooserActionOpen, "_Open", "_Cancel")
	chooser.ConnectResponse(func(response int) {
		defer chooser.Destroy()

		if response != int(gtk.ResponseAccept) {
			push(FileChoice{})
			return
		}

		file := chooser.File()
		if file == nil {
			push(FileChoice{})
			return
		}

		push(FileChoice{Path: file.Path(), OK: true})
	})
	chooser.Show()

	return choice
}
