// Package main is the entry point for the anglecalc CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/jsamuelsen/anglecalc/internal/adapters/console"
	"github.com/jsamuelsen/anglecalc/internal/app"
	"github.com/jsamuelsen/anglecalc/internal/platform/config"
	"github.com/jsamuelsen/anglecalc/internal/platform/logging"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the CLI.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Cancel on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 3. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 4. Initialize logging on stderr; stdout carries the prompts
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	ctx = logging.WithCorrelationID(logging.WithContext(ctx, logger), uuid.NewString())

	logging.FromContext(ctx).Debug("starting session",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("build_time", BuildTime),
		slog.String("environment", cfg.App.Environment),
		slog.Int("angles", cfg.Console.Angles),
	)

	// 5. Wire the terminal to the application service
	prompter := console.NewPrompter(console.PrompterConfig{
		In:          os.Stdin,
		Out:         os.Stdout,
		ShowRadians: cfg.Console.ShowRadians,
	})

	svc := app.NewAngleService(app.AngleServiceConfig{
		Input:  prompter,
		Output: prompter,
		Logger: logger,
		Count:  cfg.Console.Angles,
	})

	// 6. Run the session
	if err := svc.Run(ctx); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("session complete")

	return nil
}
