// Package gadgets provides the PostgreSQL-backed gadget repository.
package gadgets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/dbx"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
)

const selectColumns = `SELECT id, name, status, created_at, updated_at, decommissioned_at, destroyed_by_id FROM gadgets`

// PostgresRepository implements gadget storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a gadget. A taken name surfaces as common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, g *models.Gadget) (*models.Gadget, error) {
	query :=
		`INSERT INTO gadgets (id, name, status)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at
		 `
	err := r.db.QueryRowContext(ctx, query, g.ID, g.Name, string(g.Status)).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, wrap(err)
	}
	return g, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Gadget, error) {
	return r.get(ctx, selectColumns+` WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Gadget, error) {
	return r.get(ctx, selectColumns+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) get(ctx context.Context, query, id string) (*models.Gadget, error) {
	g, err := scanGadget(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrap(err)
	}
	return g, nil
}

func (r *PostgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM gadgets WHERE name = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, wrap(err)
	}
	return exists, nil
}

// List returns gadgets ordered by creation time.
func (r *PostgresRepository) List(ctx context.Context, status *models.GadgetStatus) ([]*models.Gadget, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == nil {
		rows, err = r.db.QueryContext(ctx, selectColumns+` ORDER BY created_at, id`)
	} else {
		rows, err = r.db.QueryContext(ctx, selectColumns+` WHERE status = $1 ORDER BY created_at, id`, string(*status))
	}
	if err != nil {
		return nil, wrap(err)
	}
	defer rows.Close()

	result := make([]*models.Gadget, 0)
	for rows.Next() {
		g, err := scanGadget(rows)
		if err != nil {
			return nil, wrap(err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err)
	}
	return result, nil
}

// Update writes every mutable field of g and refreshes UpdatedAt.
func (r *PostgresRepository) Update(ctx context.Context, g *models.Gadget) (*models.Gadget, error) {
	query :=
		`UPDATE gadgets
		 SET name = $2, status = $3, decommissioned_at = $4, destroyed_by_id = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `
	err := r.db.QueryRowContext(ctx, query,
		g.ID, g.Name, string(g.Status), g.DecommissionedAt, g.DestroyedByID).Scan(&g.UpdatedAt)
	if err != nil {
		return nil, wrap(err)
	}
	return g, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGadget(s scanner) (*models.Gadget, error) {
	var (
		g           models.Gadget
		status      string
		decommAt    sql.NullTime
		destroyedBy sql.NullString
	)
	if err := s.Scan(&g.ID, &g.Name, &status, &g.CreatedAt, &g.UpdatedAt, &decommAt, &destroyedBy); err != nil {
		return nil, err
	}
	g.Status = models.GadgetStatus(status)
	if decommAt.Valid {
		t := decommAt.Time
		g.DecommissionedAt = &t
	}
	if destroyedBy.Valid {
		s := destroyedBy.String
		g.DestroyedByID = &s
	}
	return &g, nil
}

func wrap(err error) error {
	err = dbx.Classify(err)
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("db error: %w", err)
}
