package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openclaw/dailyintel/internal/config"
	"github.com/openclaw/dailyintel/internal/digest"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	every := flag.Duration("every", 0, "Re-run on this interval instead of exiting (e.g. 6h)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("dailyintel %s (built %s)\n", version, buildTime)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			slog.Error("No search credential configured, refusing to run", "error", err)
		} else {
			slog.Error("Invalid configuration", "error", err)
		}
		os.Exit(1)
	}

	slog.Info("Starting dailyintel", "version", version, "out", cfg.Output.Dir)

	gen, err := digest.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize pipeline", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
	}()

	if err := gen.Run(ctx); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}

	if *every <= 0 {
		return
	}

	// Interval mode: keep regenerating until interrupted.
	ticker := time.NewTicker(*every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := gen.Run(ctx); err != nil {
				slog.Error("Run failed", "error", err)
			}
		}
	}
}
