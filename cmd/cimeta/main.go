// Command cimeta prints CI release metadata for the current checkout.
package main

import (
	"log/slog"
	"os"

	"github.com/cimeta/cimeta/internal/cli"
)

func main() {
	level := slog.LevelWarn
	if os.Getenv("CIMETA_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
