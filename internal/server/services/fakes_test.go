package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/dbx"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/archive"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/repositories/gadgets"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// --- gadgets ---

type fakeGadgetsRepo struct {
	items map[string]models.Gadget

	existsErr error
	createErr error
	updateErr error
	listErr   error

	existsCalls int
	updates     int
	lockedReads int
}

func newFakeGadgetsRepo(gs ...models.Gadget) *fakeGadgetsRepo {
	f := &fakeGadgetsRepo{items: map[string]models.Gadget{}}
	for _, g := range gs {
		f.items[g.ID] = g
	}
	return f
}

func (f *fakeGadgetsRepo) Create(ctx context.Context, g *models.Gadget) (*models.Gadget, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.items {
		if existing.Name == g.Name {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.items[g.ID] = *g
	return g, nil
}

func (f *fakeGadgetsRepo) GetByID(ctx context.Context, id string) (*models.Gadget, error) {
	g, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &g, nil
}

func (f *fakeGadgetsRepo) GetByIDForUpdate(ctx context.Context, id string) (*models.Gadget, error) {
	f.lockedReads++
	return f.GetByID(ctx, id)
}

func (f *fakeGadgetsRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	f.existsCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, g := range f.items {
		if g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGadgetsRepo) List(ctx context.Context, status *models.GadgetStatus) ([]*models.Gadget, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Gadget, 0)
	for _, g := range f.items {
		if status != nil && g.Status != *status {
			continue
		}
		g := g
		out = append(out, &g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeGadgetsRepo) Update(ctx context.Context, g *models.Gadget) (*models.Gadget, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.items[g.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	for id, existing := range f.items {
		if id != g.ID && existing.Name == g.Name {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.updates++
	f.items[g.ID] = *g
	return g, nil
}

// --- users ---

type fakeUsersRepo struct {
	byEmail map[string]models.User

	getErr    error
	createErr error
	created   int
}

func newFakeUsersRepo(us ...models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byEmail: map[string]models.User{}}
	for _, u := range us {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.created++
	f.byEmail[u.Email] = *u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

// --- manager & archive ---

type fakeRepoManager struct {
	u *fakeUsersRepo
	g *fakeGadgetsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Gadgets(db dbx.DBTX) gadgets.Repository       { return m.g }

type fakeArchiver struct {
	reports []*archive.Report
	err     error
}

func (a *fakeArchiver) Archive(ctx context.Context, r *archive.Report) error {
	a.reports = append(a.reports, r)
	return a.err
}
