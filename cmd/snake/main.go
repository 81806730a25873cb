//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"snake-arcade/internal/app"
	"snake-arcade/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	s := cfg.NewSession()
	game := app.New(s, cfg.Scale)

	ebiten.SetWindowTitle(session.Title(0, 0))
	ebiten.SetTPS(s.Config().FPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	app.Report(s)
}
