package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-learning-planner/internal/config"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability"
)

// Version is set via ldflags at build time
var Version = "dev"

const serviceModule = "learning-planner"

func main() {
	os.Exit(run())
}

func run() int {
	root := &cobra.Command{
		Use:           "learning-planner",
		Short:         "Weekly study plan scheduler",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand())

	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

// bootstrap loads configuration and installs the process logger, tracer and meter.
// The returned func flushes telemetry and must be called before exit.
func bootstrap(ctx context.Context) (*config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(obs.Logger())

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}

	return cfg, shutdown, nil
}

func observabilityConfig(cfg *config.Config) observability.Config {
	return observability.Config{
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
		Level:         cfg.SlogLevel(),
		LogFile:       cfg.LogFile,
	}
}
