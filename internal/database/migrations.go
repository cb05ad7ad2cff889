package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Statements returns the schema statements for a dialect in file order.
func Statements(dialect string) ([]string, error) {
	dir := "migrations/" + dialect
	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("unknown migration dialect %q: %w", dialect, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var stmts []string
	for _, name := range names {
		raw, err := migrationFS.ReadFile(dir + "/" + name)
		if err != nil {
			return nil, err
		}
		for _, part := range strings.Split(string(raw), ";") {
			if stmt := strings.TrimSpace(part); stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
	}
	return stmts, nil
}

// Migrate applies the schema in a single transaction. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	stmts, err := Statements(dialect)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Info().Str("dialect", dialect).Int("statements", len(stmts)).Msg("Database schema is up to date")
	return nil
}
