// Package repomanager wires the PostgreSQL repositories and the goose
// migrations behind one RepositoryManager.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/lifelog/internal/dbx"
	"github.com/dmitrijs2005/lifelog/internal/server/migrations"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/journals"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/memories"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/phases"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/photos"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/places"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/tastes"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Journals(db dbx.DBTX) journals.Repository {
	return journals.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Memories(db dbx.DBTX) memories.Repository {
	return memories.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tastes(db dbx.DBTX) tastes.Repository {
	return tastes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Places(db dbx.DBTX) places.Repository {
	return places.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Photos(db dbx.DBTX) photos.Repository {
	return photos.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Phases(db dbx.DBTX) phases.Repository {
	return phases.NewPostgresRepository(db)
}

// gooseUpContext is swapped out in tests.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded SQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}
