package main

import (
	"database/sql"

	"burokrat-site/migrations"
	"burokrat-site/pkg/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or inspect database migrations",
}

func init() {
	migrateCmd.AddCommand(
		migrationCommand("up", "Apply all pending migrations", migrations.Up),
		migrationCommand("down", "Roll back the most recent migration", migrations.Down),
		migrationCommand("status", "Show the state of every migration", migrations.Status),
	)
	rootCmd.AddCommand(migrateCmd)
}

func migrationCommand(use, short string, run func(db *sql.DB, driver string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := run(db.DB, cfg.Database.Driver); err != nil {
				log.Error("Migration failed", err, logger.Operation("migrate "+use))
				return err
			}
			log.Info("Migration finished", logger.Operation("migrate "+use))
			return nil
		},
	}
}
