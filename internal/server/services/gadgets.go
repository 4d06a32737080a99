// Package services contains server-side business logic. This file implements
// GadgetService, which owns the gadget status lifecycle.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/dbx"
	"github.com/dmitrijs2005/gadgetkeeper/internal/logging"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/archive"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/services/names"
	"github.com/google/uuid"
)

const (
	confirmationCodeRange   = 1000000
	successProbabilityRange = 100
)

// GadgetList is the result of List. Message is set only when Items is empty.
type GadgetList struct {
	Items   []string
	Message string
}

// SelfDestructResult carries the destroyed gadget and its confirmation code.
type SelfDestructResult struct {
	Gadget           *models.Gadget
	ConfirmationCode int
}

// GadgetService provides gadget operations:
// - Create: allocate or accept a unique name and persist as AVAILABLE
// - Update: set name and/or status, never leaving a terminal state
// - Decommission / SelfDestruct: guarded terminal transitions under a row lock
// - List: display strings with a per-call success probability
type GadgetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	names       *names.Allocator
	archiver    archive.Archiver
	logger      logging.Logger

	now      func() time.Time
	randIntn func(n int) int
	newID    func() string
}

// NewGadgetService constructs a GadgetService. A nil archiver disables
// destruction reports.
func NewGadgetService(db *sql.DB, m repomanager.RepositoryManager, allocator *names.Allocator, archiver archive.Archiver, logger logging.Logger) *GadgetService {
	if archiver == nil {
		archiver = archive.Nop{}
	}
	return &GadgetService{
		db:          db,
		repomanager: m,
		names:       allocator,
		archiver:    archiver,
		logger:      logger,
		now:         time.Now,
		randIntn:    common.RandIntn,
		newID:       uuid.NewString,
	}
}

// Create persists a new AVAILABLE gadget. An empty name is replaced by an
// allocated one.
func (s *GadgetService) Create(ctx context.Context, name string) (*models.Gadget, error) {
	repo := s.repomanager.Gadgets(s.db)

	if name == "" {
		allocated, err := s.names.Allocate(ctx, repo.ExistsByName)
		if err != nil {
			if errors.Is(err, common.ErrAllocationExhausted) {
				return nil, fmt.Errorf("%w: %w", common.ErrNameAllocationFailed, err)
			}
			return nil, err
		}
		name = allocated
	} else {
		exists, err := repo.ExistsByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.ErrDuplicateName
		}
	}

	g, err := repo.Create(ctx, &models.Gadget{ID: s.newID(), Name: name, Status: models.StatusAvailable})
	if err != nil {
		return nil, conflictAsDuplicateName(err)
	}

	s.logger.Info(ctx, "gadget created", "id", g.ID, "name", g.Name)
	return g, nil
}

// Get returns a single gadget.
func (s *GadgetService) Get(ctx context.Context, id string) (*models.Gadget, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	g, err := s.repomanager.Gadgets(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAsGadget(err)
	}
	return g, nil
}

// Update applies the supplied fields as given. A status change out of a
// terminal state is rejected with common.ErrInvalidTransition.
func (s *GadgetService) Update(ctx context.Context, id string, patch models.GadgetPatch) (*models.Gadget, error) {
	if id == "" {
		return nil, common.ErrGadgetIDRequired
	}
	if patch.Empty() {
		return nil, common.ErrNoFieldsProvided
	}
	if patch.Status != nil {
		if _, err := models.ParseGadgetStatus(string(*patch.Status)); err != nil {
			return nil, err
		}
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", common.ErrorValidation)
	}
	if err := checkID(id); err != nil {
		return nil, err
	}

	var out *models.Gadget
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Gadgets(tx)

		g, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundAsGadget(err)
		}

		if patch.Status != nil && *patch.Status != g.Status && g.Status.Terminal() {
			return fmt.Errorf("%w: gadget is %s", common.ErrInvalidTransition, g.Status)
		}

		if patch.Name != nil {
			g.Name = *patch.Name
		}
		if patch.Status != nil {
			g.Status = *patch.Status
		}

		out, err = repo.Update(ctx, g)
		return conflictAsDuplicateName(err)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "gadget updated", "id", out.ID, "name", out.Name, "status", out.Status)
	return out, nil
}

// Decommission moves a gadget to DECOMMISSIONED and stamps DecommissionedAt.
func (s *GadgetService) Decommission(ctx context.Context, id string) (*models.Gadget, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var out *models.Gadget
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Gadgets(tx)

		g, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundAsGadget(err)
		}

		if g.Status == models.StatusDecommissioned {
			return common.ErrAlreadyDecommissioned
		}
		if !g.Status.CanTransitionTo(models.StatusDecommissioned) {
			return fmt.Errorf("%w: gadget is %s", common.ErrInvalidTransition, g.Status)
		}

		now := s.now()
		g.Status = models.StatusDecommissioned
		g.DecommissionedAt = &now

		out, err = repo.Update(ctx, g)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "gadget decommissioned", "id", out.ID)
	return out, nil
}

// SelfDestruct moves a gadget to DESTROYED on behalf of actorID and returns
// a confirmation code. The destruction report is archived after commit;
// archive failures are only logged.
func (s *GadgetService) SelfDestruct(ctx context.Context, id, actorID string) (*SelfDestructResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var out *models.Gadget
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Gadgets(tx)

		g, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundAsGadget(err)
		}

		if g.Status == models.StatusDecommissioned {
			return common.ErrAlreadyDecommissioned
		}
		if g.Status == models.StatusDestroyed {
			return common.ErrAlreadyDestroyed
		}
		if !g.Status.CanTransitionTo(models.StatusDestroyed) {
			return fmt.Errorf("%w: gadget is %s", common.ErrInvalidTransition, g.Status)
		}

		g.Status = models.StatusDestroyed
		g.DestroyedByID = &actorID

		out, err = repo.Update(ctx, g)
		return err
	})
	if err != nil {
		return nil, err
	}

	res := &SelfDestructResult{Gadget: out, ConfirmationCode: s.randIntn(confirmationCodeRange)}
	s.logger.Info(ctx, "gadget destroyed", "id", out.ID, "actor", actorID)

	report := &archive.Report{
		GadgetID:         out.ID,
		GadgetName:       out.Name,
		DestroyedByID:    actorID,
		ConfirmationCode: res.ConfirmationCode,
		DestroyedAt:      out.UpdatedAt,
	}
	if err := s.archiver.Archive(ctx, report); err != nil {
		s.logger.Warn(ctx, "archiving destruction report failed", "id", out.ID, "error", err)
	}

	return res, nil
}

// List returns "<name> - <p>% success probability" for each gadget, optionally
// filtered by status. p is drawn fresh on every call.
func (s *GadgetService) List(ctx context.Context, status string) (*GadgetList, error) {
	var filter *models.GadgetStatus
	if status != "" {
		st, err := models.ParseGadgetStatus(status)
		if err != nil {
			return nil, err
		}
		filter = &st
	}

	gadgets, err := s.repomanager.Gadgets(s.db).List(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := &GadgetList{Items: make([]string, 0, len(gadgets))}
	if len(gadgets) == 0 {
		res.Message = "No gadgets found"
		if filter != nil {
			res.Message = fmt.Sprintf("No gadgets found with status %s", *filter)
		}
		return res, nil
	}

	for _, g := range gadgets {
		res.Items = append(res.Items, fmt.Sprintf("%s - %d%% success probability", g.Name, s.randIntn(successProbabilityRange)))
	}
	return res, nil
}

func checkID(id string) error {
	if id == "" {
		return common.ErrGadgetIDRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrInvalidGadgetID
	}
	return nil
}

func notFoundAsGadget(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrGadgetNotFound
	}
	return err
}

func conflictAsDuplicateName(err error) error {
	if errors.Is(err, common.ErrorAlreadyExists) {
		return common.ErrDuplicateName
	}
	return err
}
