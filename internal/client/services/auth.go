// Package services contains application services for the gadgetkeeper CLI.
// This file defines the authentication service: sign-up, sign-in and
// sign-out against the server plus the locally cached session.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/client"
	"github.com/dmitrijs2005/gadgetkeeper/internal/client/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/client/repositories/session"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotSignedIn    = errors.New("not signed in")
	ErrSessionExpired = errors.New("session expired, please sign in again")
	ErrMalformedToken = errors.New("server returned a malformed token")
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignUp / SignIn: authenticate against the server and cache the session.
//   - SignOut: tell the server and drop the cached session.
//   - Restore: reload a cached, unexpired session after a restart.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	SignUp(ctx context.Context, form models.SignUp) (*session.Session, error)
	SignIn(ctx context.Context, email string, password []byte) (*session.Session, error)
	SignOut(ctx context.Context) error
	Restore(ctx context.Context) (*session.Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions session.Repository
	now      func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client and
// session database.
func NewAuthService(c client.Client, db *sql.DB) AuthService {
	return &authService{client: c, sessions: session.NewSQLiteRepository(db), now: time.Now}
}

// tokenClaims is the subset of the server's claims the CLI displays.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// sessionFromToken reads role and expiry from token without verifying its
// signature. The CLI has no key and the server re-validates every call.
func sessionFromToken(email, token string, now time.Time) (*session.Session, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: no expiry", ErrMalformedToken)
	}
	return &session.Session{
		Email:     email,
		Token:     token,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: now,
	}, nil
}

func (a *authService) establish(ctx context.Context, email, token string) (*session.Session, error) {
	s, err := sessionFromToken(email, token, a.now())
	if err != nil {
		return nil, err
	}
	if err := a.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	a.client.SetToken(token)
	return s, nil
}

func (a *authService) SignUp(ctx context.Context, form models.SignUp) (*session.Session, error) {
	token, err := a.client.SignUp(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("sign up error: %w", err)
	}
	return a.establish(ctx, form.Email, token)
}

func (a *authService) SignIn(ctx context.Context, email string, password []byte) (*session.Session, error) {
	token, err := a.client.SignIn(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("sign in error: %w", err)
	}
	return a.establish(ctx, email, token)
}

// SignOut always drops the local session. Credentials are stateless on the
// server, so an unreachable server does not fail the call.
func (a *authService) SignOut(ctx context.Context) error {
	err := a.client.SignOut(ctx)
	a.client.SetToken("")
	if cerr := a.sessions.Clear(ctx); cerr != nil {
		return cerr
	}
	if err != nil && !errors.Is(err, client.ErrUnavailable) {
		return fmt.Errorf("sign out error: %w", err)
	}
	return nil
}

// Restore returns the cached session, or ErrNotSignedIn when there is none.
// An expired session is removed and reported as ErrSessionExpired.
func (a *authService) Restore(ctx context.Context) (*session.Session, error) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNotSignedIn
	}
	if s.Expired(a.now()) {
		if err := a.sessions.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}
	a.client.SetToken(s.Token)
	return s, nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
