package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"snake-arcade/internal/session"

	"github.com/joho/godotenv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Game  session.Config
	Scale int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Game: session.DefaultConfig(), Scale: 20}
}

// envKeys maps environment variables onto session.Config override keys.
var envKeys = map[string]string{
	"SNAKE_WIDTH":      "w",
	"SNAKE_HEIGHT":     "h",
	"SNAKE_FPS":        "fps",
	"SNAKE_SPEED":      "speed",
	"SNAKE_SPEED_STEP": "speed_step",
	"SNAKE_SEED":       "seed",
}

const envScale = "SNAKE_SCALE"

// LoadEnv applies SNAKE_* settings from the dotenv file at path and from the
// process environment. Process variables win over the file. A missing file
// is not an error.
func (c *Config) LoadEnv(path string) error {
	vars := map[string]string{}
	if path != "" {
		file, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		for k, v := range file {
			vars[k] = v
		}
	}
	for k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}
	if v, ok := os.LookupEnv(envScale); ok {
		vars[envScale] = v
	}
	c.applyEnv(vars)
	return nil
}

func (c *Config) applyEnv(vars map[string]string) {
	overrides := map[string]string{}
	for env, key := range envKeys {
		if v, ok := vars[env]; ok {
			overrides[key] = v
		}
	}
	c.Game = c.Game.WithOverrides(overrides)
	if v, ok := vars[envScale]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Game.Width, "w", c.Game.Width, "grid width in cells")
	fs.IntVar(&c.Game.Height, "h", c.Game.Height, "grid height in cells")
	fs.IntVar(&c.Game.FPS, "fps", c.Game.FPS, "target frames per second")
	fs.Float64Var(&c.Game.Speed, "speed", c.Game.Speed, "initial snake speed in cells per tick")
	fs.Float64Var(&c.Game.SpeedStep, "speed-step", c.Game.SpeedStep, "speed gained per food eaten")
	fs.Int64Var(&c.Game.Seed, "seed", c.Game.Seed, "food placement seed (0 picks one from the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
}
