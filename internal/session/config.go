package session

import (
	"strconv"
	"time"
)

// Config controls the playfield and pacing of a session.
type Config struct {
	Width  int
	Height int
	FPS    int

	Speed     float64
	SpeedStep float64

	// Seed feeds the food placement RNG. Zero asks the caller to pick one.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     32,
		Height:    32,
		FPS:       60,
		Speed:     0.1,
		SpeedStep: 0.02,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides returns c with any parseable values from cfg applied.
// Unknown keys and invalid values are ignored.
func (c Config) WithOverrides(cfg map[string]string) Config {
	if cfg == nil {
		return c.normalized()
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FPS = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["speed_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.SpeedStep = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c.normalized()
}

// FrameDuration is the target duration of one loop iteration, truncated to
// whole milliseconds.
func (c Config) FrameDuration() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(1000/fps) * time.Millisecond
}

// Food is never placed on the last row or column, so grids need at least
// two cells per axis.
const minDimension = 2

func (c Config) normalized() Config {
	if c.Width < minDimension {
		c.Width = minDimension
	}
	if c.Height < minDimension {
		c.Height = minDimension
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Speed <= 0 {
		c.Speed = 0.1
	}
	if c.SpeedStep < 0 {
		c.SpeedStep = 0
	}
	return c
}
