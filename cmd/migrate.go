package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-learning-planner/internal/config"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/repository"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, shutdown, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer shutdown()

			if err := config.ValidateForMigrate(cfg); err != nil {
				return err
			}

			db, err := repository.Open(ctx, cfg.Database.DSN, repository.PoolConfig{
				MaxOpenConns: cfg.Database.MaxOpenConns,
				MaxIdleConns: cfg.Database.MaxIdleConns,
			})
			if err != nil {
				return err
			}
			defer func() {
				if err := repository.Close(db); err != nil {
					slog.Warn("failed to close database", slog.String("error", err.Error()))
				}
			}()

			if err := repository.Migrate(ctx, db); err != nil {
				return err
			}

			slog.InfoContext(ctx, "database schema migrated",
				slog.Int("tables", len(repository.Models())),
			)
			return nil
		},
	}
}
