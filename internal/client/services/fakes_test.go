package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/client"
	"github.com/dmitrijs2005/gadgetkeeper/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

// mintToken signs a token with a throwaway key. The CLI never verifies
// signatures.
func mintToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  "user-1",
		"role": role,
		"exp":  exp.Unix(),
		"iat":  exp.Add(-time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

type fakeClient struct {
	token string

	signUpForm models.SignUp
	signUpTok  string
	signUpErr  error

	signInEmail string
	signInPass  string
	signInTok   string
	signInErr   error

	signOutCalled bool
	signOutErr    error

	pingErr   error
	closed    bool
	gadget    *models.Gadget
	lines     []string
	listMsg   string
	destroyed *models.SelfDestructResult
	gadgetErr error

	lastID     string
	lastName   string
	lastStatus string
	calls      []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error                   { f.closed = true; return nil }
func (f *fakeClient) SetToken(token string)          { f.token = token }
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) SignUp(ctx context.Context, req models.SignUp) (string, error) {
	f.signUpForm = req
	return f.signUpTok, f.signUpErr
}

func (f *fakeClient) SignIn(ctx context.Context, email, password string) (string, error) {
	f.signInEmail, f.signInPass = email, password
	return f.signInTok, f.signInErr
}

func (f *fakeClient) SignOut(ctx context.Context) error {
	f.signOutCalled = true
	return f.signOutErr
}

func (f *fakeClient) ListGadgets(ctx context.Context, status string) ([]string, string, error) {
	f.calls = append(f.calls, "list")
	f.lastStatus = status
	if f.gadgetErr != nil {
		return nil, "", f.gadgetErr
	}
	return f.lines, f.listMsg, nil
}

func (f *fakeClient) GetGadget(ctx context.Context, id string) (*models.Gadget, error) {
	f.calls = append(f.calls, "get")
	f.lastID = id
	if f.gadgetErr != nil {
		return nil, f.gadgetErr
	}
	return f.gadget, nil
}

func (f *fakeClient) CreateGadget(ctx context.Context, name string) (*models.Gadget, error) {
	f.calls = append(f.calls, "create")
	f.lastName = name
	if f.gadgetErr != nil {
		return nil, f.gadgetErr
	}
	return f.gadget, nil
}

func (f *fakeClient) UpdateGadget(ctx context.Context, id, name, status string) (*models.Gadget, error) {
	f.calls = append(f.calls, "update")
	f.lastID, f.lastName, f.lastStatus = id, name, status
	if f.gadgetErr != nil {
		return nil, f.gadgetErr
	}
	return f.gadget, nil
}

func (f *fakeClient) DecommissionGadget(ctx context.Context, id string) (*models.Gadget, error) {
	f.calls = append(f.calls, "decommission")
	f.lastID = id
	if f.gadgetErr != nil {
		return nil, f.gadgetErr
	}
	return f.gadget, nil
}

func (f *fakeClient) SelfDestructGadget(ctx context.Context, id string) (*models.SelfDestructResult, error) {
	f.calls = append(f.calls, "self-destruct")
	f.lastID = id
	if f.gadgetErr != nil {
		return nil, f.gadgetErr
	}
	return f.destroyed, nil
}
