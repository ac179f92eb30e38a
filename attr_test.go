package frpgtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindCell(t *testing.T) {
	t.Run("writes the current value immediately, without a redraw", func(t *testing.T) {
		cell := newCell("v0")

		writes := []string{}
		redraws := 0
		bindCell(cell,
			func(v string) { writes = append(writes, v) },
			func(func()) {},
			func() { redraws++ },
		)

		assert.Equal(t, []string{"v0"}, writes)
		assert.Equal(t, 0, redraws)
	})

	t.Run("writes and redraws on each change", func(t *testing.T) {
		cell := newCell("v0")

		writes := []string{}
		redraws := 0
		bindCell(cell,
			func(v string) { writes = append(writes, v) },
			func(func()) {},
			func() { redraws++ },
		)

		cell.Set("v1")
		cell.Set("v2")

		assert.Equal(t, []string{"v0", "v1", "v2"}, writes)
		assert.Equal(t, 2, redraws)
	})

	t.Run("writes equal values instead of eliding them", func(t *testing.T) {
		cell := newCell("same")

		writes := []string{}
		bindCell(cell,
			func(v string) { writes = append(writes, v) },
			func(func()) {},
			func() {},
		)

		cell.Set("same")
		cell.Set("same")

		assert.Equal(t, []string{"same", "same", "same"}, writes)
	})

	t.Run("stops writing once teardown fires", func(t *testing.T) {
		cell := newCell("v0")

		writes := []string{}
		var teardown func()
		bindCell(cell,
			func(v string) { writes = append(writes, v) },
			func(fn func()) { teardown = fn },
			func() {},
		)
		require.NotNil(t, teardown)

		cell.Set("v1")
		teardown()
		cell.Set("v2")

		assert.Equal(t, []string{"v0", "v1"}, writes)
	})

	t.Run("two bindings on one cell survive each other's teardown", func(t *testing.T) {
		cell := newCell("v0")

		first := []string{}
		var firstDown func()
		bindCell(cell,
			func(v string) { first = append(first, v) },
			func(fn func()) { firstDown = fn },
			func() {},
		)

		second := []string{}
		var secondDown func()
		bindCell(cell,
			func(v string) { second = append(second, v) },
			func(fn func()) { secondDown = fn },
			func() {},
		)

		cell.Set("v1")
		secondDown()
		cell.Set("v2")

		assert.Equal(t, []string{"v0", "v1", "v2"}, first)
		assert.Equal(t, []string{"v0", "v1"}, second)

		firstDown()
		cell.Set("v3")

		assert.Equal(t, []string{"v0", "v1", "v2"}, first)
		assert.Equal(t, []string{"v0", "v1"}, second)
	})

	t.Run("drops a change already in flight when teardown fires", func(t *testing.T) {
		cell := newCell("v0")

		// delivered before the bound listener, like a destroy handler
		// running earlier in the same dispatch
		var teardown func()
		cell.Subscribe(func(v string) {
			if v == "last" {
				teardown()
			}
		})

		writes := []string{}
		bindCell(cell,
			func(v string) { writes = append(writes, v) },
			func(fn func()) { teardown = fn },
			func() {},
		)

		cell.Set("v1")
		cell.Set("last")

		assert.Equal(t, []string{"v0", "v1"}, writes)
	})
}
