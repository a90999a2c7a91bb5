package main

import (
	"fmt"
	"log/slog"
	"os"

	"spincube/internal/app"
	"spincube/internal/engine"
)

func main() {
	engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	application := app.New(app.DefaultConfig())
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "spincube failed: %v\n", err)
		os.Exit(1)
	}
}
