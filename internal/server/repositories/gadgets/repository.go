package gadgets

import (
	"context"

	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, gadget *models.Gadget) (*models.Gadget, error)
	GetByID(ctx context.Context, id string) (*models.Gadget, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*models.Gadget, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// List returns all gadgets, or only those in status when it is non-nil.
	List(ctx context.Context, status *models.GadgetStatus) ([]*models.Gadget, error)
	Update(ctx context.Context, gadget *models.Gadget) (*models.Gadget, error)
}
