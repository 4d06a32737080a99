package client

import (
	"context"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/models"
)

// Client is the CLI's view of the gadgetkeeper HTTP API. Gadget calls carry
// the token set with SetToken.
type Client interface {
	Close() error
	SetToken(token string)
	Ping(ctx context.Context) error

	SignUp(ctx context.Context, req models.SignUp) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context) error

	ListGadgets(ctx context.Context, status string) ([]string, string, error)
	GetGadget(ctx context.Context, id string) (*models.Gadget, error)
	CreateGadget(ctx context.Context, name string) (*models.Gadget, error)
	UpdateGadget(ctx context.Context, id, name, status string) (*models.Gadget, error)
	DecommissionGadget(ctx context.Context, id string) (*models.Gadget, error)
	SelfDestructGadget(ctx context.Context, id string) (*models.SelfDestructResult, error)
}
