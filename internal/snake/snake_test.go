package snake

import (
	"math"
	"slices"
	"testing"

	"snake-arcade/internal/core"
)

func TestNewStartsCentredAndAlive(t *testing.T) {
	s := New(core.Size{W: 32, H: 32}, 0)
	x, y := s.Head()
	if x != 16 || y != 16 {
		t.Fatalf("expected head at (16,16), got (%v,%v)", x, y)
	}
	if !s.Alive() || s.Size() != 1 || len(s.Body()) != 0 {
		t.Fatalf("unexpected initial state alive=%v size=%d body=%v", s.Alive(), s.Size(), s.Body())
	}
	if s.Speed() != DefaultSpeed {
		t.Fatalf("expected default speed, got %v", s.Speed())
	}
	if s.Direction() != core.Up {
		t.Fatalf("expected initial heading up, got %v", s.Direction())
	}
}

func TestChangeDirectionRejectsReversalWithBody(t *testing.T) {
	pairs := [][2]core.Direction{
		{core.Up, core.Down},
		{core.Down, core.Up},
		{core.Left, core.Right},
		{core.Right, core.Left},
	}
	for _, p := range pairs {
		current, reverse := p[0], p[1]

		s := New(core.Size{W: 10, H: 10}, 0.5)
		s.dir = current
		s.size = 2
		s.body = []core.Cell{{X: 0, Y: 0}}
		s.Steer(reverse)
		if s.Direction() != current {
			t.Fatalf("reversal %v -> %v must be rejected with a body", current, reverse)
		}

		for _, turn := range []core.Direction{core.Up, core.Down, core.Left, core.Right} {
			if turn == reverse {
				continue
			}
			s.dir = current
			s.Steer(turn)
			if s.Direction() != turn {
				t.Fatalf("turn %v -> %v should be accepted", current, turn)
			}
		}
	}
}

func TestChangeDirectionAllowsReversalWhenSingleCell(t *testing.T) {
	for _, d := range []core.Direction{core.Up, core.Down, core.Left, core.Right} {
		s := New(core.Size{W: 10, H: 10}, 0.5)
		s.dir = d
		s.Steer(d.Opposite())
		if s.Direction() != d.Opposite() {
			t.Fatalf("single-cell snake should reverse from %v", d)
		}
	}
}

func TestChangeDirectionExplicitForbidden(t *testing.T) {
	s := New(core.Size{W: 10, H: 10}, 0.5)
	s.size = 3
	s.dir = core.Left
	s.ChangeDirection(core.Up, core.Left)
	if s.Direction() != core.Left {
		t.Fatal("heading equal to forbidden must block the change")
	}
	s.ChangeDirection(core.Up, core.Right)
	if s.Direction() != core.Up {
		t.Fatal("expected change when heading differs from forbidden")
	}
}

func TestUpdateWrapsUpwardsFromTopRow(t *testing.T) {
	s := New(core.Size{W: 32, H: 32}, 0.1)
	s.headY = 0.05
	s.Update()
	_, y := s.Head()
	if math.Abs(y-31.95) > 1e-9 {
		t.Fatalf("expected y to wrap to 31.95, got %v", y)
	}
}

func TestUpdateKeepsHeadInsideGrid(t *testing.T) {
	grid := core.Size{W: 7, H: 5}
	s := New(grid, 0.37)
	dirs := []core.Direction{core.Up, core.Left, core.Down, core.Right}
	for i := 0; i < 2000; i++ {
		if i%50 == 0 {
			s.dir = dirs[(i/50)%len(dirs)]
		}
		s.Update()
		x, y := s.Head()
		if x < 0 || x >= float64(grid.W) || y < 0 || y >= float64(grid.H) {
			t.Fatalf("tick %d: head (%v,%v) left the grid", i, x, y)
		}
	}
}

func TestGrowthAppliesOnNextCrossing(t *testing.T) {
	s := New(core.Size{W: 10, H: 10}, 0.25)
	s.dir = core.Right
	s.headX, s.headY = 2.5, 2.5

	s.Grow()
	s.Grow()
	if s.Size() != 1 || !s.Growing() {
		t.Fatal("Grow must only set the pending flag")
	}

	s.Update() // 2.75, same cell
	if s.Size() != 1 {
		t.Fatalf("size changed before crossing: %d", s.Size())
	}
	s.Update() // 3.0, crossing
	if s.Size() != 2 || s.Growing() {
		t.Fatalf("expected size 2 after crossing, got %d (growing=%v)", s.Size(), s.Growing())
	}
	if !slices.Equal(s.Body(), []core.Cell{{X: 2, Y: 2}}) {
		t.Fatalf("unexpected body %v", s.Body())
	}

	// Without pending growth the body slides.
	for i := 0; i < 4; i++ {
		s.Update()
	}
	if s.Size() != 2 || !slices.Equal(s.Body(), []core.Cell{{X: 3, Y: 2}}) {
		t.Fatalf("expected body to slide, size=%d body=%v", s.Size(), s.Body())
	}
}

func TestSelfCollisionOnCrossingTick(t *testing.T) {
	s := New(core.Size{W: 10, H: 10}, 0.25)
	s.dir = core.Right
	s.headX, s.headY = 5.25, 5.5
	s.size = 5
	s.body = []core.Cell{{X: 3, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}

	s.Update() // 5.5
	if !s.Alive() {
		t.Fatal("died before crossing")
	}
	s.Update() // 5.75
	if !s.Alive() {
		t.Fatal("died before crossing")
	}
	s.Update() // 6.0 enters (6,5)
	if s.Alive() {
		t.Fatal("expected death on entering an occupied cell")
	}

	x, y := s.Head()
	body := s.Body()
	s.Update()
	nx, ny := s.Head()
	if nx != x || ny != y || !slices.Equal(body, s.Body()) {
		t.Fatal("dead snake must not move")
	}
}

func TestTailCellIsVacatedBeforeCollisionCheck(t *testing.T) {
	s := New(core.Size{W: 10, H: 10}, 0.5)
	s.dir = core.Right
	s.headX, s.headY = 5.5, 5.5
	s.size = 4
	// Oldest segment sits where the head is about to go.
	s.body = []core.Cell{{X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}

	s.Update()
	if !s.Alive() {
		t.Fatal("moving into the cell the tail leaves must not kill the snake")
	}
}

func TestBodyHasNoDuplicatesWhileAlive(t *testing.T) {
	s := New(core.Size{W: 12, H: 12}, 0.5)
	turns := []core.Direction{core.Right, core.Down, core.Left, core.Down}
	for i := 0; i < 400 && s.Alive(); i++ {
		if i%6 == 0 {
			s.Grow()
		}
		if i%10 == 0 {
			s.Steer(turns[(i/10)%len(turns)])
		}
		s.Update()
		if !s.Alive() {
			break
		}
		seen := map[core.Cell]bool{}
		for _, c := range s.Body() {
			if seen[c] {
				t.Fatalf("tick %d: duplicate segment %+v in %v", i, c, s.Body())
			}
			seen[c] = true
		}
		if len(s.Body()) != s.Size()-1 {
			t.Fatalf("tick %d: body length %d does not match size %d", i, len(s.Body()), s.Size())
		}
	}
}

func TestOccupies(t *testing.T) {
	s := New(core.Size{W: 10, H: 10}, 0.5)
	s.headX, s.headY = 4.7, 3.2
	s.body = []core.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}}
	s.size = 3

	for _, c := range []core.Cell{{X: 4, Y: 3}, {X: 1, Y: 1}, {X: 2, Y: 1}} {
		if !s.Occupies(c) {
			t.Fatalf("expected %+v to be occupied", c)
		}
	}
	if s.Occupies(core.Cell{X: 5, Y: 3}) {
		t.Fatal("unexpected occupancy")
	}
}

func TestViewIsDetached(t *testing.T) {
	s := New(core.Size{W: 10, H: 10}, 0.5)
	s.body = []core.Cell{{X: 1, Y: 1}}
	s.size = 2
	v := s.View()
	v.Body[0] = core.Cell{X: 9, Y: 9}
	if s.Body()[0] != (core.Cell{X: 1, Y: 1}) {
		t.Fatal("view must not alias snake state")
	}
	if v.Head != s.HeadCell() || v.Size != 2 || !v.Alive {
		t.Fatalf("unexpected view %+v", v)
	}
}
