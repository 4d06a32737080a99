package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/logging"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/services"
)

// UserService is the credential issuer used by the auth handlers.
type UserService interface {
	SignUp(ctx context.Context, in services.SignUpInput) (*services.Session, error)
	SignIn(ctx context.Context, email, password string) (*services.Session, error)
	TokenValidity() time.Duration
}

// GadgetService is the lifecycle used by the gadget handlers.
type GadgetService interface {
	Create(ctx context.Context, name string) (*models.Gadget, error)
	Get(ctx context.Context, id string) (*models.Gadget, error)
	Update(ctx context.Context, id string, patch models.GadgetPatch) (*models.Gadget, error)
	Decommission(ctx context.Context, id string) (*models.Gadget, error)
	SelfDestruct(ctx context.Context, id, actorID string) (*services.SelfDestructResult, error)
	List(ctx context.Context, status string) (*services.GadgetList, error)
}

// Handlers groups HTTP handlers and their dependencies.
type Handlers struct {
	users         UserService
	gadgets       GadgetService
	gate          Authorizer
	logger        logging.Logger
	secureCookies bool
}

func NewHandlers(us UserService, gs GadgetService, gate Authorizer, l logging.Logger, secureCookies bool) *Handlers {
	return &Handlers{
		users:         us,
		gadgets:       gs,
		gate:          gate,
		logger:        l.With("module", "http_handlers"),
		secureCookies: secureCookies,
	}
}
