package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/gadgetkeeper/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// gooseUpContext is a test seam for goose.UpContext.
var gooseUpContext = goose.UpContext

// RunMigrations applies the embedded session store migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite file at dsn, creating its directory if
// needed, and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating session store: %w", err)
	}

	return db, nil
}
