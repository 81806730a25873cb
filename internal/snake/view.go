package snake

import "snake-arcade/internal/core"

// View is an immutable snapshot of a snake handed to displays.
type View struct {
	Grid  core.Size
	HeadX float64
	HeadY float64
	Head  core.Cell
	Body  []core.Cell
	Size  int
	Alive bool
}

// View captures the current state. The body slice is a copy.
func (s *Snake) View() View {
	return View{
		Grid:  s.grid,
		HeadX: s.headX,
		HeadY: s.headY,
		Head:  s.HeadCell(),
		Body:  s.Body(),
		Size:  s.size,
		Alive: s.alive,
	}
}
