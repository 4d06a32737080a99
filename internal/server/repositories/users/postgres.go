// Package users provides the PostgreSQL-backed user repository.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/dbx"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and fills the server-assigned timestamps.
// A taken email surfaces as common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, name, email, password_hash, role)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role)).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, wrap(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password_hash, role, created_at, updated_at FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	var role string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, wrap(err)
	}
	user.Role = models.Role(role)

	return user, nil
}

func wrap(err error) error {
	err = dbx.Classify(err)
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("db error: %w", err)
}
