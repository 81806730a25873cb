//go:build raylib

package main

import (
	"context"
	"flag"
	"log"
	"runtime"

	"snake-arcade/internal/app"
	"snake-arcade/internal/window"
)

func init() {
	// raylib calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	s := cfg.NewSession()
	w := window.Open(s.Grid(), cfg.Scale)
	s.Run(context.Background(), w, w, nil)
	w.Close()

	app.Report(s)
}
