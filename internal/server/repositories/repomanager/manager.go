// Package repomanager vends repository implementations bound to either a
// database handle or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gadgetkeeper/internal/dbx"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/repositories/gadgets"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Gadgets(db dbx.DBTX) gadgets.Repository
}
