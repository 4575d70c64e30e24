package main

import (
	"projectflow/internal/repository/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if err := postgres.Migrate(cmd.Context(), cfg.Postgres); err != nil {
			log.Errorw("migration failed", "error", err)
			return err
		}
		log.Infow("migrations applied", "dir", cfg.Postgres.MigrationsDir)
		return nil
	},
}
