// Package localdb opens the CLI's SQLite database and applies its embedded
// migrations. The database only holds the persisted session.
package localdb

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/lifelog/internal/client/migrations"
	"github.com/dmitrijs2005/lifelog/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

var gooseUpContext = goose.UpContext

// RunMigrations applies pending migrations silently; goose output would
// otherwise be printed on every CLI invocation.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite file at path and
// migrates it. The parent directory is created too.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if _, err := filex.EnsureDir(dir); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one writer at a time keeps SQLite from returning SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
