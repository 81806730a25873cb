package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake-arcade/internal/app"
	"snake-arcade/internal/term"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	s := cfg.NewSession()
	t, err := term.New(s.Grid())
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	s.Run(ctx, t, t, nil)
	stop()
	t.Close()

	app.Report(s)
}
