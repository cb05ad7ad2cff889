package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatements(t *testing.T) {
	for _, dialect := range []string{DialectPostgres, DialectSQLite} {
		t.Run(dialect, func(t *testing.T) {
			stmts, err := Statements(dialect)
			require.NoError(t, err)
			require.NotEmpty(t, stmts)

			var sawUnique bool
			for _, s := range stmts {
				assert.NotContains(t, s, ";")
				if assert.NotEmpty(t, s) && containsAll(s, "applications", "UNIQUE (job_id, user_id)") {
					sawUnique = true
				}
			}
			assert.True(t, sawUnique, "applications must be unique per (job_id, user_id)")
		})
	}
}

func TestStatementsUnknownDialect(t *testing.T) {
	_, err := Statements("oracle")
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	stmts, err := Statements(DialectPostgres)
	require.NoError(t, err)

	mock.ExpectBegin()
	for _, s := range stmts {
		mock.ExpectExec(s).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, Migrate(context.Background(), db, DialectPostgres))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	stmts, err := Statements(DialectSQLite)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(stmts[0]).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(stmts[1]).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = Migrate(context.Background(), db, DialectSQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration statement 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateSQLite(t *testing.T) {
	db, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(context.Background(), db, DialectSQLite))
	// Idempotent.
	require.NoError(t, Migrate(context.Background(), db, DialectSQLite))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('companies','jobs','profiles','applications')`).Scan(&n))
	assert.Equal(t, 4, n)
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
