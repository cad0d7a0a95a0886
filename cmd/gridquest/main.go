// Package main is the entry point for GridQuest.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridquest/internal/game"
	"github.com/samdwyer/gridquest/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height")
	flag.IntVar(&cfg.Enemies, "enemies", cfg.Enemies, "number of enemies")
	flag.BoolVar(&cfg.Plain, "plain", cfg.Plain, "line mode: read commands from stdin")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "debug log file")
	flag.Parse()

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if cfg.Plain {
		err = g.RunPlain(ctx, os.Stdin, os.Stdout)
	} else {
		err = g.Run(ctx)
	}
	if err != nil && ctx.Err() == nil {
		log.Fatalf("Game error: %v", err)
	}

	fmt.Printf("%s after %d turns (seed %d)\n", g.State(), g.Turns(), g.Seed())
}

// newLogger opens path for debug logs. The terminal belongs to the game, so
// without a path logs are discarded.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_GRIDQUEST_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_GRIDQUEST_DATASET")
	if dataset == "" {
		dataset = "gridquest" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
