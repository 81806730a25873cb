// Package term draws a session in a terminal using tcell and reads keyboard
// input from it.
package term

import (
	"fmt"
	"sync"

	"snake-arcade/internal/core"
	"snake-arcade/internal/render"
	"snake-arcade/internal/session"
	"snake-arcade/internal/snake"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell spans two terminal columns so cells look roughly square.
const cellColumns = 2

var glyphs = [...]rune{
	render.CellEmpty:    ' ',
	render.CellFood:     '*',
	render.CellBody:     'o',
	render.CellHead:     '@',
	render.CellHeadDead: 'x',
}

// Terminal owns a tcell screen for the lifetime of a game. Close must be
// called to restore the terminal.
type Terminal struct {
	screen tcell.Screen
	grid   core.Size
	cells  []uint8
	styles []tcell.Style
	status string

	closeOnce sync.Once
}

// New opens the process terminal.
func New(grid core.Size) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Open(screen, grid)
}

// Open initializes screen and takes ownership of it.
func Open(screen tcell.Screen, grid core.Size) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	styles := make([]tcell.Style, len(render.Palette))
	for i, c := range render.Palette {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		styles[i] = tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
	}

	return &Terminal{
		screen: screen,
		grid:   grid,
		cells:  make([]uint8, grid.W*grid.H),
		styles: styles,
	}, nil
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(t.screen.Fini)
}

// Render implements session.Display.
func (t *Terminal) Render(view snake.View, food core.Cell) {
	render.Rasterize(t.cells, t.grid, view, food)
	for y := 0; y < t.grid.H; y++ {
		for x := 0; x < t.grid.W; x++ {
			v := t.cells[y*t.grid.W+x]
			style := t.styles[v]
			t.screen.SetContent(x*cellColumns, y, glyphs[v], nil, style)
			for dx := 1; dx < cellColumns; dx++ {
				t.screen.SetContent(x*cellColumns+dx, y, ' ', nil, style)
			}
		}
	}
	t.drawStatus()
	t.screen.Show()
}

// UpdateTitle implements session.Display. The title is shown on the line
// below the playfield and, where the terminal supports it, as the window
// title.
func (t *Terminal) UpdateTitle(score, fps int) {
	t.status = session.Title(score, fps)
	if titled, ok := t.screen.(interface{ SetTitle(string) }); ok {
		titled.SetTitle(t.status)
	}
	t.drawStatus()
	t.screen.Show()
}

func (t *Terminal) drawStatus() {
	y := t.grid.H
	width := t.grid.W * cellColumns
	runes := []rune(t.status)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
	}
}

// PollEvents implements session.InputSource. It never blocks.
func (t *Terminal) PollEvents(dst []session.Event) []session.Event {
	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if e, ok := keyEvent(ev); ok {
				dst = append(dst, e)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
	return dst
}

func keyEvent(ev *tcell.EventKey) (session.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return session.KeyDown(core.Up), true
	case tcell.KeyDown:
		return session.KeyDown(core.Down), true
	case tcell.KeyLeft:
		return session.KeyDown(core.Left), true
	case tcell.KeyRight:
		return session.KeyDown(core.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.Quit(), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return session.KeyDown(core.Up), true
		case 's', 'S':
			return session.KeyDown(core.Down), true
		case 'a', 'A':
			return session.KeyDown(core.Left), true
		case 'd', 'D':
			return session.KeyDown(core.Right), true
		case 'q', 'Q':
			return session.Quit(), true
		}
	}
	return session.Event{}, false
}
