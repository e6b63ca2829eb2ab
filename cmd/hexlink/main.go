// Package main is the entry point for hexlink.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/hexlink/internal/config"
	"github.com/samdwyer/hexlink/internal/game"
	"github.com/samdwyer/hexlink/internal/gamedata"
	"github.com/samdwyer/hexlink/internal/journal"
	"github.com/samdwyer/hexlink/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(context.Background()); err != nil {
		log.Fatalf("hexlink: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to a file or nowhere.
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Telemetry.Enabled {
		telemetry.ConfigureEnv(cfg.Telemetry.Endpoint, cfg.Telemetry.Headers)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			slog.Warn("telemetry setup failed, running without traces", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					slog.Warn("telemetry shutdown failed", "error", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	shapes, err := gamedata.LoadShapeRegistry()
	if err != nil {
		return err
	}
	shape, err := shapes.Resolve(cfg.Shape)
	if err != nil {
		return err
	}
	balance, err := cfg.ResolveBalance()
	if err != nil {
		return err
	}

	gameCfg := game.Config{
		Seed:    cfg.Seed,
		Shape:   shape,
		Balance: balance,
	}
	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			slog.Warn("match history disabled", "path", cfg.JournalPath, "error", err)
		} else {
			defer j.Close()
			gameCfg.Journal = j
		}
	}

	g, err := game.New(gameCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	slog.Info("game over", "session", g.SessionID(), "score", g.Score())
	return nil
}

// setupLogging installs the default slog handler described by cfg.
func setupLogging(cfg *config.Config) (func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}
