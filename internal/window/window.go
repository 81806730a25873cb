//go:build raylib

// Package window draws a session in a raylib window.
package window

import (
	"sync"

	"snake-arcade/internal/core"
	"snake-arcade/internal/render"
	"snake-arcade/internal/session"
	"snake-arcade/internal/snake"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window owns the raylib window and its GL context. Only one may exist per
// process, and it must be used from the goroutine that opened it.
type Window struct {
	grid   core.Size
	scale  int32
	cells  []uint8
	colors []rl.Color

	closeOnce sync.Once
}

// Open creates a window sized for grid at scale pixels per cell.
func Open(grid core.Size, scale int) *Window {
	if scale <= 0 {
		scale = 1
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.W*scale), int32(grid.H*scale), session.Title(0, 0))
	// Quitting is handled through PollEvents.
	rl.SetExitKey(0)

	colors := make([]rl.Color, len(render.Palette))
	for i, c := range render.Palette {
		colors[i] = rl.NewColor(c.R, c.G, c.B, c.A)
	}
	return &Window{
		grid:   grid,
		scale:  int32(scale),
		cells:  make([]uint8, grid.W*grid.H),
		colors: colors,
	}
}

// Close destroys the window. It is safe to call more than once.
func (w *Window) Close() {
	w.closeOnce.Do(rl.CloseWindow)
}

// Render implements session.Display.
func (w *Window) Render(view snake.View, food core.Cell) {
	render.Rasterize(w.cells, w.grid, view, food)

	rl.BeginDrawing()
	rl.ClearBackground(w.colors[render.CellEmpty])
	// Leave a one pixel gap between cells.
	size := w.scale - 1
	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			v := w.cells[y*w.grid.W+x]
			if v == render.CellEmpty {
				continue
			}
			rl.DrawRectangle(int32(x)*w.scale, int32(y)*w.scale, size, size, w.colors[v])
		}
	}
	rl.EndDrawing()
}

// UpdateTitle implements session.Display.
func (w *Window) UpdateTitle(score, fps int) {
	rl.SetWindowTitle(session.Title(score, fps))
}

// PollEvents implements session.InputSource. Key presses queued since the
// previous frame are drained in order.
func (w *Window) PollEvents(dst []session.Event) []session.Event {
	if rl.WindowShouldClose() {
		dst = append(dst, session.Quit())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		switch key {
		case rl.KeyUp, rl.KeyW:
			dst = append(dst, session.KeyDown(core.Up))
		case rl.KeyDown, rl.KeyS:
			dst = append(dst, session.KeyDown(core.Down))
		case rl.KeyLeft, rl.KeyA:
			dst = append(dst, session.KeyDown(core.Left))
		case rl.KeyRight, rl.KeyD:
			dst = append(dst, session.KeyDown(core.Right))
		case rl.KeyEscape, rl.KeyQ:
			dst = append(dst, session.Quit())
		}
	}
	return dst
}
