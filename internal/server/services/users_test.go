package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/logging"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/auth"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/config"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("k")

func newUserService(t *testing.T, repo *fakeUsersRepo) *UserService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &config.Config{
		SecretKey:                   string(testSecret),
		AccessTokenValidityDuration: time.Hour,
		PasswordHashCost:            bcrypt.MinCost,
	}
	s := NewUserService(db, &fakeRepoManager{u: repo}, cfg, logging.Nop())
	s.newID = func() string { return actorID }
	return s
}

func existingUser(t *testing.T, password string, role models.Role) models.User {
	t.Helper()
	hash, err := auth.NewPasswordHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	return models.User{ID: actorID, Name: "Q Branch", Email: "q@mi6.uk", PasswordHash: hash, Role: role}
}

func TestSignUp_Success(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	sess, err := s.SignUp(context.Background(), SignUpInput{Name: "Q Branch", Email: "q@mi6.uk", Password: "gadgets123", Role: models.RoleAdmin})
	require.NoError(t, err)

	stored := repo.byEmail["q@mi6.uk"]
	assert.NotEqual(t, "gadgets123", stored.PasswordHash)
	assert.True(t, auth.NewPasswordHasher(bcrypt.MinCost).Compare(stored.PasswordHash, "gadgets123"))

	claims, err := auth.ParseToken(sess.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, actorID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestSignUp_DefaultsToUserRole(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	sess, err := s.SignUp(context.Background(), SignUpInput{Name: "Moneypenny", Email: "mp@mi6.uk", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, sess.User.Role)
}

func TestSignUp_Errors(t *testing.T) {
	t.Run("email taken", func(t *testing.T) {
		repo := newFakeUsersRepo(existingUser(t, "x", models.RoleUser))
		s := newUserService(t, repo)

		_, err := s.SignUp(context.Background(), SignUpInput{Name: "Q", Email: "q@mi6.uk", Password: "password1"})
		assert.ErrorIs(t, err, common.ErrDuplicateEmail)
		assert.Zero(t, repo.created)
	})

	t.Run("race on insert is still a conflict", func(t *testing.T) {
		repo := newFakeUsersRepo()
		repo.createErr = common.ErrorAlreadyExists
		s := newUserService(t, repo)

		_, err := s.SignUp(context.Background(), SignUpInput{Name: "Q", Email: "q@mi6.uk", Password: "password1"})
		assert.ErrorIs(t, err, common.ErrDuplicateEmail)
	})

	t.Run("unknown role", func(t *testing.T) {
		s := newUserService(t, newFakeUsersRepo())
		_, err := s.SignUp(context.Background(), SignUpInput{Name: "Q", Email: "q@mi6.uk", Password: "password1", Role: "ROOT"})
		assert.ErrorIs(t, err, common.ErrorValidation)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := newFakeUsersRepo()
		repo.getErr = errBoom{}
		s := newUserService(t, repo)
		_, err := s.SignUp(context.Background(), SignUpInput{Name: "Q", Email: "q@mi6.uk", Password: "password1"})
		assert.ErrorIs(t, err, errBoom{})
	})
}

func TestSignIn(t *testing.T) {
	repo := newFakeUsersRepo(existingUser(t, "gadgets123", models.RoleAdmin))
	s := newUserService(t, repo)

	t.Run("ok", func(t *testing.T) {
		sess, err := s.SignIn(context.Background(), "q@mi6.uk", "gadgets123")
		require.NoError(t, err)
		claims, err := auth.ParseToken(sess.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		sess, err := s.SignIn(context.Background(), "q@mi6.uk", "wrong-password")
		assert.ErrorIs(t, err, common.ErrInvalidPassword)
		assert.Nil(t, sess)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.SignIn(context.Background(), "ghost@mi6.uk", "gadgets123")
		assert.ErrorIs(t, err, common.ErrUserNotFound)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestTokenValidity(t *testing.T) {
	s := newUserService(t, newFakeUsersRepo())
	assert.Equal(t, time.Hour, s.TokenValidity())
}
