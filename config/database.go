package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"burokrat-site/pkg/logger"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// InitDB opens the pool for the configured driver and verifies it with a ping.
func InitDB(cfg Database) (*sqlx.DB, error) {
	log := logger.Get().WithComponent("database")

	if cfg.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	dsn := cfg.URL
	switch cfg.Driver {
	case "mysql":
		dsn = mysqlDSN(dsn)
	case "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	db, err := sqlx.Connect(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Info("Database connected",
		logger.String("driver", cfg.Driver),
		logger.Int("max_open", cfg.MaxOpenConns),
		logger.Int("max_idle", cfg.MaxIdleConns),
		logger.String("max_lifetime", cfg.ConnMaxLifetime.String()),
	)
	return db, nil
}

// mysqlDSN appends the connection parameters the repositories rely on.
func mysqlDSN(dsn string) string {
	params := []string{}
	if !strings.Contains(dsn, "parseTime") {
		params = append(params, "parseTime=true")
	}
	if !strings.Contains(dsn, "loc=") {
		params = append(params, "loc=UTC")
	}
	if !strings.Contains(dsn, "timeout=") {
		params = append(params, "timeout=10s")
	}
	if !strings.Contains(dsn, "charset=") {
		params = append(params, "charset=utf8mb4")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
