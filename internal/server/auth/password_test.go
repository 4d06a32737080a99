package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("Password123!")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$2a$"), "bcrypt digest expected, got %q", digest)
	assert.True(t, h.Compare(digest, "Password123!"))
	assert.False(t, h.Compare(digest, "Password123?"))
	assert.False(t, h.Compare("not-a-digest", "Password123!"))
}

func TestPasswordHasher_Salted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two hashes of the same password must differ by salt")
}

func TestNewPasswordHasher_Cost(t *testing.T) {
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
	assert.Equal(t, DefaultHashCost, NewPasswordHasher(0).cost)
	assert.Equal(t, DefaultHashCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)

	digest, err := NewPasswordHasher(DefaultHashCost).Hash("x")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 100))
	require.Error(t, err)
}
