package main

import (
	"fmt"
	"os"

	"burokrat-site/config"
	"burokrat-site/pkg/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "burokrat",
	Short: "Бюрократ website",
	Long: `burokrat serves the Бюрократ brochure site and carries the
maintenance commands around it: schema migrations, the one-time catalog
import and the contact submission tools.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and initialises the global logger.
func bootstrap() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(logger.Config{
		Level:       logger.ParseLevel(cfg.LogLevel),
		Environment: cfg.Env,
		Version:     cfg.Version,
	})
	return cfg, logger.Get(), nil
}

// openDB is for commands that cannot run without a database.
func openDB(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for this command")
	}
	return config.InitDB(cfg.Database)
}
