package session

import (
	"context"

	"snake-arcade/internal/core"
	"snake-arcade/internal/snake"

	"github.com/google/uuid"
)

// Session owns one game: the snake, the food, the score and the RNG that
// places food. It is driven from a single goroutine.
type Session struct {
	cfg  Config
	id   string
	grid core.Size

	snake *snake.Snake
	food  core.Cell
	score int
	rng   *core.RNG

	frames *core.FrameCounter
	events []Event
}

// New starts a session with the snake at the grid centre and the first food
// already placed. A nil rng is replaced by one seeded from cfg.Seed.
func New(cfg Config, rng *core.RNG) *Session {
	cfg = cfg.normalized()
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	grid := core.Size{W: cfg.Width, H: cfg.Height}
	s := &Session{
		cfg:    cfg,
		id:     uuid.NewString(),
		grid:   grid,
		snake:  snake.New(grid, cfg.Speed),
		rng:    rng,
		frames: core.NewFrameCounter(),
	}
	s.PlaceFood()
	return s
}

// PlaceFood moves the food to a random cell the snake does not occupy. The
// last row and column are never chosen. If the snake covers every candidate
// cell this does not return.
func (s *Session) PlaceFood() {
	for {
		c := s.rng.CellIn(s.grid.W-1, s.grid.H-1)
		if !s.snake.Occupies(c) {
			s.food = c
			return
		}
	}
}

// Tick advances the game by one fixed step. Nothing happens once the snake
// is dead.
func (s *Session) Tick() {
	if !s.snake.Alive() {
		return
	}
	s.snake.Update()

	if s.snake.HeadCell() == s.food {
		s.score++
		s.PlaceFood()
		s.snake.Grow()
		s.snake.Accelerate(s.cfg.SpeedStep)
	}
}

// HandleEvents applies input events and reports whether the session should
// keep running.
func (s *Session) HandleEvents(events []Event) bool {
	running := true
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			running = false
		case EventKeyDown:
			s.snake.Steer(ev.Dir)
		}
	}
	return running
}

// Step runs one loop iteration without pacing: drain input, tick, render and
// refresh the title once per second. clock timestamps the end of the frame.
// It reports false once a quit event was seen.
func (s *Session) Step(d Display, in InputSource, clock core.Clock) bool {
	s.events = in.PollEvents(s.events[:0])
	running := s.HandleEvents(s.events)

	s.Tick()
	d.Render(s.snake.View(), s.food)

	if fps, ok := s.frames.Tick(clock.Now()); ok {
		d.UpdateTitle(s.score, fps)
	}
	return running
}

// Run drives the session until a quit event arrives or ctx is done. Each
// iteration is followed by a sleep covering the rest of the frame; frames
// that overrun are not made up for.
func (s *Session) Run(ctx context.Context, d Display, in InputSource, pacer *core.FixedDelay) {
	if pacer == nil {
		pacer = core.NewFixedDelay(s.cfg.FrameDuration(), nil)
	}
	clock := pacer.Clock()
	s.frames.Reset(clock.Now())

	running := true
	for running {
		if ctx.Err() != nil {
			return
		}
		start := clock.Now()
		running = s.Step(d, in, clock)
		pacer.Wait(start)
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Config returns the normalized configuration.
func (s *Session) Config() Config { return s.cfg }

// Grid returns the playfield dimensions.
func (s *Session) Grid() core.Size { return s.grid }

// Score is the number of food items eaten.
func (s *Session) Score() int { return s.score }

// Size is the current snake length in cells.
func (s *Session) Size() int { return s.snake.Size() }

// Food returns the cell holding the food.
func (s *Session) Food() core.Cell { return s.food }

// Alive reports whether the snake is still alive.
func (s *Session) Alive() bool { return s.snake.Alive() }

// Snake returns a snapshot of the snake.
func (s *Session) Snake() snake.View { return s.snake.View() }

// Parameters describes the session for HUD panels.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Game",
			Params: []core.Parameter{
				core.IntParam("score", "Score", s.score),
				core.IntParam("size", "Length", s.snake.Size()),
				core.FloatParam("speed", "Speed", s.snake.Speed()),
				core.BoolParam("alive", "Alive", s.snake.Alive()),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.IntParam("fps", "Target FPS", s.cfg.FPS),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
	}}
}
