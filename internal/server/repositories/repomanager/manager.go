package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lifelog/internal/dbx"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/journals"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/memories"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/phases"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/photos"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/places"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/tastes"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX, so the same
// call site works on a *sql.DB or inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Journals(db dbx.DBTX) journals.Repository
	Memories(db dbx.DBTX) memories.Repository
	Tastes(db dbx.DBTX) tastes.Repository
	Places(db dbx.DBTX) places.Repository
	Photos(db dbx.DBTX) photos.Repository
	Phases(db dbx.DBTX) phases.Repository
}
