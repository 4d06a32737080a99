// Package session persists the credential of the signed-in CLI user so it
// survives restarts of the REPL.
package session

import (
	"context"
	"time"
)

// Session is the locally cached sign-in state. Token is the raw signed
// credential returned by the server; Role and ExpiresAt are read from its
// claims for display and early expiry checks.
type Session struct {
	Email     string
	Token     string
	Role      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the credential is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Repository stores at most one session.
type Repository interface {
	// Save replaces the stored session.
	Save(ctx context.Context, s *Session) error
	// Load returns (nil, nil) when no session is stored.
	Load(ctx context.Context) (*Session, error)
	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
