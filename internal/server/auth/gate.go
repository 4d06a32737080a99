package auth

import (
	"errors"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
)

// Identity is the caller decoded from a verified session credential.
type Identity struct {
	UserID string
	Role   models.Role
}

// Gate authenticates session credentials and enforces the role required by
// protected operations.
type Gate struct {
	secret       []byte
	requiredRole models.Role
}

// NewGate returns a gate admitting only callers with the ADMIN role.
func NewGate(secret []byte) *Gate {
	return &Gate{secret: secret, requiredRole: models.RoleAdmin}
}

// Authenticate verifies token and returns the identity it carries.
//
//   - empty token                     -> common.ErrorUnauthenticated
//   - bad signature, malformed token  -> common.ErrInvalidToken
//   - expired token                   -> common.ErrTokenExpired
func (g *Gate) Authenticate(token string) (*Identity, error) {
	if token == "" {
		return nil, common.ErrorUnauthenticated
	}

	claims, err := ParseToken(token, g.secret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// Authorize authenticates token and then requires the gate's role. The
// identity is returned together with common.ErrorForbidden so callers can
// log who was refused.
func (g *Gate) Authorize(token string) (*Identity, error) {
	id, err := g.Authenticate(token)
	if err != nil {
		return nil, err
	}
	if id.Role != g.requiredRole {
		return id, common.ErrorForbidden
	}
	return id, nil
}
