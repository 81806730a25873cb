//go:build ebiten

package app

import (
	"snake-arcade/internal/core"
	"snake-arcade/internal/render"
	"snake-arcade/internal/session"
	"snake-arcade/internal/snake"
	"snake-arcade/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// Game adapts a session to the ebiten.Game interface. It is also the
// session's Display and InputSource: Render caches the frame for Draw, and
// PollEvents reports keys pressed since the previous tick.
type Game struct {
	session *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	grid    core.Size
	scale   int

	cells []uint8
	view  snake.View
	food  core.Cell
	keys  []ebiten.Key
}

// New constructs a Game for the provided session.
func New(s *session.Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	grid := s.Grid()
	return &Game{
		session: s,
		painter: render.NewGridPainter(grid.W, grid.H),
		hud:     ui.NewHUD(hudWidth),
		grid:    grid,
		scale:   scale,
		cells:   make([]uint8, grid.W*grid.H),
		view:    s.Snake(),
		food:    s.Food(),
	}
}

// Update runs one session step per ebiten tick.
func (g *Game) Update() error {
	if !g.session.Step(g, g, core.SystemClock{}) {
		return ebiten.Termination
	}
	g.hud.Update(g.session.Parameters())
	return nil
}

// PollEvents implements session.InputSource.
func (g *Game) PollEvents(dst []session.Event) []session.Event {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeyArrowUp, ebiten.KeyW:
			dst = append(dst, session.KeyDown(core.Up))
		case ebiten.KeyArrowDown, ebiten.KeyS:
			dst = append(dst, session.KeyDown(core.Down))
		case ebiten.KeyArrowLeft, ebiten.KeyA:
			dst = append(dst, session.KeyDown(core.Left))
		case ebiten.KeyArrowRight, ebiten.KeyD:
			dst = append(dst, session.KeyDown(core.Right))
		case ebiten.KeyEscape, ebiten.KeyQ:
			dst = append(dst, session.Quit())
		}
	}
	return dst
}

// Render implements session.Display. Drawing happens in Draw.
func (g *Game) Render(view snake.View, food core.Cell) {
	g.view = view
	g.food = food
}

// UpdateTitle implements session.Display.
func (g *Game) UpdateTitle(score, fps int) {
	ebiten.SetWindowTitle(session.Title(score, fps))
}

// Draw renders the most recent frame.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Rasterize(g.cells, g.grid, g.view, g.food)
	g.painter.Blit(screen, g.cells, render.Palette, g.scale)
	g.hud.Draw(screen, g.grid.W*g.scale, g.grid.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.W*g.scale + hudWidth, g.grid.H * g.scale
}

// WindowSize is the initial window size for the game.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
