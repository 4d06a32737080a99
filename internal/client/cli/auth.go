package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
)

// getSimpleText, getPassword and confirm are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

var errPasswordMismatch = errors.New("passwords do not match")

// SignUp prompts for the registration form and creates an account. The
// server validates the fields; its message is shown on failure.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		return errPasswordMismatch
	}

	role, err := getSimpleText(a.reader, "Enter role (ADMIN or USER, empty for USER)", a.out)
	if err != nil {
		return err
	}

	s, err := a.authService.SignUp(ctx, models.SignUp{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		Role:            role,
	})
	a.track(err)
	if err != nil {
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "Signed up as %s (%s)\n", s.Email, s.Role)
	return nil
}

// SignIn prompts for credentials and caches the resulting session.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.SignIn(ctx, email, password)
	a.track(err)
	if err != nil {
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "Signed in as %s (%s), session valid until %s\n",
		s.Email, s.Role, s.ExpiresAt.Local().Format("15:04:05"))
	return nil
}

// SignOut drops the cached session.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.authService.SignOut(ctx); err != nil {
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
