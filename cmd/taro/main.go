package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lighty7/taro/internal/adapters/catalog"
	"github.com/lighty7/taro/internal/adapters/synth"
	"github.com/lighty7/taro/internal/app"
	"github.com/lighty7/taro/internal/config"
	"github.com/lighty7/taro/internal/tui"
)

type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "taro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal belongs to the UI, so logs only go to LOG_FILE when set.
	handler := slog.DiscardHandler
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		handler = slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})
	}
	logger := slog.New(handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := app.NewReadingService(catalog.NewEmbeddedStore(), synth.NewPaced(cfg.SynthesisDelay, logger), stdRNG{}, logger)
	sess, err := svc.NewSession(ctx, cfg.Spread())
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	logger.Info("session started", "spread", cfg.DefaultSpread)
	p := tea.NewProgram(tui.NewAppModel(ctx, svc, sess, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
