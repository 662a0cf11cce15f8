package main

import (
	"log/slog"
	"os"

	"property-portal/internal/cli"
	"property-portal/internal/logger"
)

func main() {
	logHandler := logger.NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	slog.SetDefault(slog.New(logHandler))

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
