package db

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, driver), mock
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestEmbeddedMigrations_BothDialectsCarrySameVersions(t *testing.T) {
	my, err := fs.Glob(migrationsFS, "migrations/mysql/*.sql")
	require.NoError(t, err)
	pg, err := fs.Glob(migrationsFS, "migrations/postgres/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, my)
	require.Len(t, pg, len(my))
	for i := range my {
		assert.Equal(t, my[i][len("migrations/mysql/"):], pg[i][len("migrations/postgres/"):])
	}
}

func TestMigrate_UsesDriverDirectory(t *testing.T) {
	cases := map[string]string{
		"mysql": "migrations/mysql",
		"pgx":   "migrations/postgres",
	}
	for driver, want := range cases {
		t.Run(driver, func(t *testing.T) {
			conn, _ := newMockDB(t, driver)
			var got string
			stubGoose(t, func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
				got = dir
				return nil
			})
			require.NoError(t, Migrate(context.Background(), conn))
			assert.Equal(t, want, got)
		})
	}
}

func TestMigrate_WrapsGooseError(t *testing.T) {
	conn, _ := newMockDB(t, "mysql")
	boom := errors.New("boom")
	stubGoose(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return boom })

	err := Migrate(context.Background(), conn)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "goose up")
}

func TestMigrate_UnknownDriver(t *testing.T) {
	conn, _ := newMockDB(t, "sqlite3")
	stubGoose(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		t.Fatal("goose must not run")
		return nil
	})
	assert.Error(t, Migrate(context.Background(), conn))
}

func TestMissingTables_MySQL(t *testing.T) {
	conn, mock := newMockDB(t, "mysql")
	q := regexp.QuoteMeta("WHERE table_schema = DATABASE()")

	mock.ExpectQuery(q).WithArgs("categories").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("categories"))
	mock.ExpectQuery(q).WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	missing, err := MissingTables(context.Background(), conn, []string{"categories", "users"})
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, missing)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHasTable_PostgresUsesCurrentSchema(t *testing.T) {
	conn, mock := newMockDB(t, "pgx")
	mock.ExpectQuery(regexp.QuoteMeta("table_schema = current_schema()")).WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("orders"))

	ok, err := HasTable(context.Background(), conn, "orders")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMissingTables_PropagatesError(t *testing.T) {
	conn, mock := newMockDB(t, "mysql")
	mock.ExpectQuery("information_schema").WillReturnError(sql.ErrConnDone)

	_, err := MissingTables(context.Background(), conn, RequiredTables)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
