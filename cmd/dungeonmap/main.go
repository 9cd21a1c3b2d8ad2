// Package main is the entry point for the dungeonmap explorer.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonmap/internal/game"
	"github.com/samdwyer/dungeonmap/internal/telemetry"
	"github.com/samdwyer/dungeonmap/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource that needs closing, so its defers complete
// before main exits on error.
func run(ctx context.Context) error {
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Printf("Warning: using defaults for invalid settings: %v", err)
	}

	logger, closeLog, err := openGenerationLog()
	if err != nil {
		return fmt.Errorf("open generation log: %w", err)
	}
	defer closeLog()

	g, err := game.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// openGenerationLog returns a logger for map generation narration. It writes
// to the file named by DUNGEONMAP_LOG, or nowhere if that is unset; the
// terminal belongs to the game screen.
func openGenerationLog() (world.Logger, func(), error) {
	path := os.Getenv("DUNGEONMAP_LOG")
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "map: ", log.LstdFlags), func() { f.Close() }, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here.
	apiKey := os.Getenv("HONEYCOMB_DUNGEONMAP_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUNGEONMAP_DATASET")
	if dataset == "" {
		dataset = "dungeonmap"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
