// Package auth holds the credential primitives of the server: signing and
// verifying session tokens, hashing passwords, and the access gate that
// protects gadget operations.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session credential: the standard registered
// claims plus the user identity and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"uid"`
	Role   models.Role `json:"role"`
}

// now is a seam for tests that need to mint already-expired tokens.
var now = time.Now

// GenerateToken signs an HS256 token for the given identity that expires
// after validityDuration.
func GenerateToken(userID string, role models.Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	issuedAt := now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies signature, algorithm and expiry of tokenString and
// returns its claims. Expired tokens yield common.ErrTokenExpired, every
// other failure common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
