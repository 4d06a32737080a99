package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/client"
	"github.com/dmitrijs2005/gadgetkeeper/internal/client/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/client/repositories/session"
)

// GadgetService exposes the admin gadget operations to the REPL.
type GadgetService interface {
	List(ctx context.Context, status string) ([]string, string, error)
	Get(ctx context.Context, id string) (*models.Gadget, error)
	Create(ctx context.Context, name string) (*models.Gadget, error)
	Update(ctx context.Context, id, name, status string) (*models.Gadget, error)
	Decommission(ctx context.Context, id string) (*models.Gadget, error)
	SelfDestruct(ctx context.Context, id string) (*models.SelfDestructResult, error)
}

type gadgetService struct {
	client   client.Client
	sessions session.Repository
}

// NewGadgetService constructs a GadgetService bound to the given API client
// and session database.
func NewGadgetService(c client.Client, db *sql.DB) GadgetService {
	return &gadgetService{client: c, sessions: session.NewSQLiteRepository(db)}
}

// check drops the cached session when the server rejects the credential.
func (s *gadgetService) check(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	s.client.SetToken("")
	if cerr := s.sessions.Clear(ctx); cerr != nil {
		return cerr
	}
	return fmt.Errorf("%w: %w", ErrSessionExpired, err)
}

func (s *gadgetService) List(ctx context.Context, status string) ([]string, string, error) {
	items, msg, err := s.client.ListGadgets(ctx, status)
	return items, msg, s.check(ctx, err)
}

func (s *gadgetService) Get(ctx context.Context, id string) (*models.Gadget, error) {
	g, err := s.client.GetGadget(ctx, id)
	return g, s.check(ctx, err)
}

func (s *gadgetService) Create(ctx context.Context, name string) (*models.Gadget, error) {
	g, err := s.client.CreateGadget(ctx, name)
	return g, s.check(ctx, err)
}

func (s *gadgetService) Update(ctx context.Context, id, name, status string) (*models.Gadget, error) {
	g, err := s.client.UpdateGadget(ctx, id, name, status)
	return g, s.check(ctx, err)
}

func (s *gadgetService) Decommission(ctx context.Context, id string) (*models.Gadget, error) {
	g, err := s.client.DecommissionGadget(ctx, id)
	return g, s.check(ctx, err)
}

func (s *gadgetService) SelfDestruct(ctx context.Context, id string) (*models.SelfDestructResult, error) {
	r, err := s.client.SelfDestructGadget(ctx, id)
	return r, s.check(ctx, err)
}
