package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"

	"backoffice/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// seam for tests; goose keeps package level state
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// MigrationDir maps a sql driver name to its embedded migration folder and goose dialect.
func MigrationDir(driver string) (dir, dialect string, err error) {
	switch driver {
	case config.DriverMySQL:
		return path.Join("migrations", "mysql"), "mysql", nil
	case config.DriverPostgres:
		return path.Join("migrations", "postgres"), "postgres", nil
	default:
		return "", "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

// Migrate applies every pending embedded migration for the connection's driver.
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	dir, dialect, err := MigrationDir(conn.DriverName())
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, conn.DB, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
