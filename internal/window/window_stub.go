//go:build !raylib

package window

import (
	"snake-arcade/internal/core"
	"snake-arcade/internal/session"
	"snake-arcade/internal/snake"
)

// Window is a placeholder used when the raylib build tag is absent.
type Window struct{}

// Open panics to indicate that the raylib build tag is required.
func Open(core.Size, int) *Window {
	panic("window.Open requires building with the 'raylib' tag")
}

// Close is a no-op placeholder.
func (w *Window) Close() {}

// Render is a no-op placeholder.
func (w *Window) Render(snake.View, core.Cell) {}

// UpdateTitle is a no-op placeholder.
func (w *Window) UpdateTitle(int, int) {}

// PollEvents returns dst unchanged.
func (w *Window) PollEvents(dst []session.Event) []session.Event { return dst }
