package app

import (
	"log"
	"time"

	"snake-arcade/internal/core"
	"snake-arcade/internal/session"
)

// NewSession builds a session from the configuration. A zero seed is
// replaced with one taken from the clock.
func (c *Config) NewSession() *session.Session {
	if c.Game.Seed == 0 {
		c.Game.Seed = time.Now().UnixNano()
	}
	s := session.New(c.Game, core.NewRNG(c.Game.Seed))
	cfg := s.Config()
	log.Printf("session %s: %dx%d grid at %d fps, seed %d", s.ID(), cfg.Width, cfg.Height, cfg.FPS, cfg.Seed)
	return s
}

// Report logs the outcome of a finished session.
func Report(s *session.Session) {
	log.Printf("session %s: score %d", s.ID(), s.Score())
	log.Printf("session %s: size %d", s.ID(), s.Size())
}
