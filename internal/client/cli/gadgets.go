package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/services"
)

var errNothingToUpdate = errors.New("nothing to update")

func (a *App) requireSession() error {
	if !a.isLoggedIn() {
		return services.ErrNotSignedIn
	}
	return nil
}

// gadgetID takes the id from args or prompts for it.
func (a *App) gadgetID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := getSimpleText(a.reader, "Enter gadget ID", a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errors.New("gadget ID is required")
	}
	return id, nil
}

func (a *App) List(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	status := ""
	if len(args) > 0 {
		status = strings.ToUpper(args[0])
	}

	items, msg, err := a.gadgetService.List(ctx, status)
	a.track(err)
	if err != nil {
		return err
	}

	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	if len(items) == 0 && msg == "" {
		fmt.Fprintln(a.out, "No gadgets")
	}
	for _, line := range items {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	id, err := a.gadgetID(args)
	if err != nil {
		return err
	}

	g, err := a.gadgetService.Get(ctx, id)
	a.track(err)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, g.Details())
	return nil
}

// Add creates a gadget. Arguments form the name; without them the server
// picks one.
func (a *App) Add(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	g, err := a.gadgetService.Create(ctx, strings.Join(args, " "))
	a.track(err)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s)\n", g.Name, g.ID)
	return nil
}

// Update prompts for a new name and status. Empty answers keep the value.
func (a *App) Update(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	id, err := a.gadgetID(args)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "New status: AVAILABLE, DEPLOYED, DECOMMISSIONED, DESTROYED (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name == "" && status == "" {
		return errNothingToUpdate
	}

	g, err := a.gadgetService.Update(ctx, id, name, strings.ToUpper(status))
	a.track(err)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, g.Details())
	return nil
}

func (a *App) Decommission(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	id, err := a.gadgetID(args)
	if err != nil {
		return err
	}

	g, err := a.gadgetService.Decommission(ctx, id)
	a.track(err)
	if err != nil {
		return err
	}
	if g.DecommissionedAt != nil {
		fmt.Fprintf(a.out, "%s decommissioned at %s\n", g.Name, g.DecommissionedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	}
	fmt.Fprintf(a.out, "%s decommissioned\n", g.Name)
	return nil
}

// Destroy asks for confirmation before triggering self-destruct.
func (a *App) Destroy(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	id, err := a.gadgetID(args)
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, "Self-destruct gadget "+id+"?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	res, err := a.gadgetService.SelfDestruct(ctx, id)
	a.track(err)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s destroyed. Confirmation code: %06d\n", res.Gadget.Name, res.ConfirmationCode)
	return nil
}
