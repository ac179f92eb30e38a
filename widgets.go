package frpgtk

import (
	firm "github.com/davidroman0O/firm-go"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// NewLabel creates a label whose text follows the given behavior.
func NewLabel(text Cell[string]) *gtk.Label {
	label := gtk.NewLabel(text.Peek())
	Bind(label, text, label.SetText)

	return label
}

// NewButton creates a push button and the stream of its clicks.
func NewButton(label string) (*gtk.Button, *Event[struct{}]) {
	button := gtk.NewButtonWithLabel(label)
	clicks, _ := ConnectEvent(button, "clicked")

	return button, clicks
}

// NewDynamicButton is NewButton with a label that follows a behavior.
func NewDynamicButton(label Cell[string]) (*gtk.Button, *Event[struct{}]) {
	button := gtk.NewButtonWithLabel(label.Peek())
	Bind(button, label, button.SetLabel)
	clicks, _ := ConnectEvent(button, "clicked")

	return button, clicks
}

// NewToggleButton creates a toggle button and the behavior of its state,
// seeded with active.
func NewToggleButton(label string, active bool) (*gtk.ToggleButton, *firm.Signal[bool]) {
	button := gtk.NewToggleButtonWithLabel(label)
	button.SetActive(active)

	toggles, _ := ConnectValue(button, "toggled", button.Active)

	return button, Hold(active, toggles)
}

// NewEntry creates a text entry and the behavior of its content, seeded
// with text.
func NewEntry(text string) (*gtk.Entry, *firm.Signal[string]) {
	entry := gtk.NewEntry()
	entry.SetText(text)

	edits, _ := ConnectValue(entry, "changed", func() string { return entry.Text() })

	return entry, Hold(text, edits)
}

// NewProgressBar creates a progress bar whose fraction (0 to 1) follows
// the given behavior.
func NewProgressBar(fraction Cell[float64]) *gtk.ProgressBar {
	bar := gtk.NewProgressBar()
	Bind(bar, fraction, bar.SetFraction)

	return bar
}

// NewSlider creates a horizontal slider over [min, max] and the behavior
// of its position, seeded with value.
func NewSlider(min, max, value float64) (*gtk.Scale, *firm.Signal[float64]) {
	scale := gtk.NewScaleWithRange(gtk.OrientationHorizontal, min, max, 1)
	scale.SetValue(value)

	moves, _ := ConnectValue(scale, "value-changed", scale.Value)

	return scale, Hold(value, moves)
}
