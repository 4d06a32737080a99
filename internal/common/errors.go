// Package common defines shared constants and sentinel errors used across
// client and server layers of GadgetKeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorForbidden       = errors.New("forbidden")

	// Auth errors.
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrInvalidPassword = errors.New("invalid password")
	ErrDuplicateEmail  = errors.New("email already used")

	// Gadget lifecycle errors.
	ErrNoFieldsProvided      = errors.New("no fields to update")
	ErrInvalidStatus         = errors.New("invalid status value")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrAlreadyDecommissioned = errors.New("gadget already decommissioned")
	ErrAlreadyDestroyed      = errors.New("gadget already destroyed")
	ErrDuplicateName         = errors.New("gadget already exists")
	ErrGadgetIDRequired      = errors.New("gadget ID is required")
	ErrInvalidGadgetID       = errors.New("invalid gadget ID")
	ErrGadgetNotFound        = fmt.Errorf("gadget %w", ErrorNotFound)
	ErrUserNotFound          = fmt.Errorf("user %w", ErrorNotFound)

	// Name allocation errors.
	ErrAllocationExhausted  = errors.New("could not generate a unique gadget name after maximum attempts")
	ErrNameAllocationFailed = errors.New("failed to generate unique gadget name")
)
