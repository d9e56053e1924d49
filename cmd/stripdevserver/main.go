package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/antoniolaudieri/rimborsami/internal/buildconfig"
	"github.com/antoniolaudieri/rimborsami/internal/logger"
)

func main() {
	configPath := flag.String("config", "capacitor.config.ts", "path to the native packaging config")
	mode := flag.String("mode", defaultMode(), "build mode; only production strips the dev server block")
	flag.Parse()

	changed, err := buildconfig.StripFile(*configPath, *mode)
	switch {
	case errors.Is(err, buildconfig.ErrBlockNotFound):
		logger.Warn("No dev server block found, config left unchanged",
			slog.String("config", *configPath))
	case err != nil:
		logger.Fatal("Failed to strip dev server block",
			slog.String("config", *configPath),
			slog.String("error", err.Error()))
	case changed:
		logger.Info("Removed dev server block",
			slog.String("config", *configPath))
	default:
		logger.Info("Skipping dev server strip outside production",
			slog.String("mode", *mode))
	}
}

func defaultMode() string {
	if mode := os.Getenv("BUILD_MODE"); mode != "" {
		return mode
	}
	return "development"
}
