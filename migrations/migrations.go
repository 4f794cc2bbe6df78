// Package migrations embeds the goose SQL migrations for each supported driver.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql
var files embed.FS

func prepare(driver string) error {
	goose.SetBaseFS(files)
	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

// Up applies all pending migrations for driver ("postgres" or "mysql").
func Up(db *sql.DB, driver string) error {
	if err := prepare(driver); err != nil {
		return err
	}
	return goose.Up(db, driver)
}

// Down rolls back the most recent migration.
func Down(db *sql.DB, driver string) error {
	if err := prepare(driver); err != nil {
		return err
	}
	return goose.Down(db, driver)
}

// Status logs the applied state of every migration.
func Status(db *sql.DB, driver string) error {
	if err := prepare(driver); err != nil {
		return err
	}
	return goose.Status(db, driver)
}
