// Package repomanager wires repository constructors to a concrete database
// backend and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkrasnenko/sharedtab/internal/dbx"
	"github.com/dkrasnenko/sharedtab/internal/server/repositories/sessions"
)

// RepositoryManager vends repository implementations for a storage backend.
type RepositoryManager interface {
	Sessions(db dbx.DBTX) sessions.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
