package repomanager

import (
	"context"
	"database/sql"

	"messagely/internal/dbx"
	"messagely/internal/repositories/messages"
	"messagely/internal/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX and exposes the
// schema migration hook. Services hold one manager and pass it the
// handle scoped to each operation.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Messages(db dbx.DBTX) messages.Repository
}
