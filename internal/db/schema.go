package db

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/config"

	"github.com/jmoiron/sqlx"
)

// RequiredTables lists every table the API reads or writes.
var RequiredTables = []string{
	"categories",
	"suppliers",
	"products",
	"customers",
	"orders",
	"order_details",
	"inventories",
	"inventory_histories",
	"users",
}

func schemaQuery(driver string) string {
	if driver == config.DriverPostgres {
		return `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_name = $1
		LIMIT 1`
	}
	return `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1`
}

// HasTable reports whether table exists in the connection's current schema.
func HasTable(ctx context.Context, conn *sqlx.DB, table string) (bool, error) {
	var name sql.NullString
	err := conn.QueryRowContext(ctx, schemaQuery(conn.DriverName()), table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name.Valid && name.String != "", nil
}

// MissingTables returns the subset of tables not present in the schema, in input order.
func MissingTables(ctx context.Context, conn *sqlx.DB, tables []string) ([]string, error) {
	missing := []string{}
	for _, t := range tables {
		ok, err := HasTable(ctx, conn, t)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, t)
		}
	}
	return missing, nil
}
