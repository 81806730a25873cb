package snake

import (
	"slices"

	"snake-arcade/internal/core"
)

// DefaultSpeed is the distance, in cells, a fresh snake covers per tick.
const DefaultSpeed = 0.1

// Snake is the player-controlled creature. The head moves continuously while
// the body is tracked in whole grid cells and only changes when the head
// crosses into a new cell.
type Snake struct {
	grid core.Size

	dir   core.Direction
	speed float64
	size  int
	alive bool

	headX, headY float64

	// body holds the cells behind the head, oldest first; len(body) == size-1.
	body    []core.Cell
	growing bool
}

// New places a single-cell snake at the centre of grid heading up.
func New(grid core.Size, speed float64) *Snake {
	if grid.W <= 0 {
		grid.W = 1
	}
	if grid.H <= 0 {
		grid.H = 1
	}
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Snake{
		grid:  grid,
		dir:   core.Up,
		speed: speed,
		size:  1,
		alive: true,
		headX: float64(grid.W) / 2,
		headY: float64(grid.H) / 2,
	}
}

// Update advances the snake by one tick. Dead snakes do not move.
func (s *Snake) Update() {
	if !s.alive {
		return
	}
	prev := s.HeadCell()
	s.moveHead()
	cur := s.HeadCell()
	if cur != prev {
		s.updateBody(cur, prev)
	}
}

func (s *Snake) moveHead() {
	switch s.dir {
	case core.Up:
		s.headY -= s.speed
	case core.Down:
		s.headY += s.speed
	case core.Left:
		s.headX -= s.speed
	case core.Right:
		s.headX += s.speed
	}
	s.headX = core.WrapFloat(s.headX, s.grid.W)
	s.headY = core.WrapFloat(s.headY, s.grid.H)
}

func (s *Snake) updateBody(cur, prev core.Cell) {
	s.body = append(s.body, prev)
	if s.growing {
		s.growing = false
		s.size++
	} else {
		s.body = slices.Delete(s.body, 0, 1)
	}

	// Collisions are only checked on cell crossings.
	if slices.Contains(s.body, cur) {
		s.alive = false
	}
}

// ChangeDirection turns the snake towards want unless it is currently heading
// in forbidden and has a body to run into.
func (s *Snake) ChangeDirection(want, forbidden core.Direction) {
	if s.dir != forbidden || s.size == 1 {
		s.dir = want
	}
}

// Steer turns towards want, refusing an immediate reversal.
func (s *Snake) Steer(want core.Direction) {
	s.ChangeDirection(want, want.Opposite())
}

// Occupies reports whether c is the head cell or part of the body.
func (s *Snake) Occupies(c core.Cell) bool {
	if c == s.HeadCell() {
		return true
	}
	return slices.Contains(s.body, c)
}

// Grow extends the body by one cell on the next cell crossing.
func (s *Snake) Grow() { s.growing = true }

// Accelerate adds delta to the per-tick speed.
func (s *Snake) Accelerate(delta float64) { s.speed += delta }

// Alive reports whether the snake is still moving.
func (s *Snake) Alive() bool { return s.alive }

// Size is the number of cells occupied including the head.
func (s *Snake) Size() int { return s.size }

// Speed is the per-tick step in cells.
func (s *Snake) Speed() float64 { return s.speed }

// Direction is the current heading.
func (s *Snake) Direction() core.Direction { return s.dir }

// Growing reports whether a growth is pending.
func (s *Snake) Growing() bool { return s.growing }

// Head returns the fractional head position.
func (s *Snake) Head() (float64, float64) { return s.headX, s.headY }

// HeadCell returns the grid cell containing the head.
func (s *Snake) HeadCell() core.Cell { return core.CellAt(s.headX, s.headY) }

// Body returns a copy of the body cells, oldest first.
func (s *Snake) Body() []core.Cell { return slices.Clone(s.body) }

// Grid returns the playfield dimensions.
func (s *Snake) Grid() core.Size { return s.grid }
