// This file implements UserService, which handles sign-up, sign-in and
// minting of session tokens. Sign-out is stateless and lives in the transport.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/logging"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/auth"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/config"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// SignUpInput holds already shape-validated registration data.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// Session is an authenticated user together with a freshly minted token.
type Session struct {
	User  *models.User
	Token string
}

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      *auth.PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
	newID                       func() string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      auth.NewPasswordHasher(cfg.PasswordHashCost),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		logger:                      logger,
		newID:                       uuid.NewString,
	}
}

// SignUp registers a user and returns a session for it. An empty role
// defaults to USER.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) (*Session, error) {
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, in.Role)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateEmail
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	user, err := repo.Create(ctx, &models.User{
		ID:           s.newID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, err
	}

	s.logger.Info(ctx, "user signed up", "id", user.ID, "role", user.Role)
	return s.newSession(user)
}

// SignIn verifies credentials. An unknown email yields common.ErrUserNotFound
// and a wrong password common.ErrInvalidPassword.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Warn(ctx, "sign in rejected", "id", user.ID)
		return nil, common.ErrInvalidPassword
	}

	return s.newSession(user)
}

// TokenValidity is the lifetime of minted tokens; the transport uses it for
// cookie expiry.
func (s *UserService) TokenValidity() time.Duration {
	return s.accessTokenValidityDuration
}

func (s *UserService) newSession(user *models.User) (*Session, error) {
	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return &Session{User: user, Token: token}, nil
}
