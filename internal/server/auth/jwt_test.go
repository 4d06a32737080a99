package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID, models.RoleAdmin, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, models.RoleAdmin)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("exp and iat must be set: %+v", claims.RegisteredClaims)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("validity mismatch: got %v want 1h", got)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u1", models.RoleAdmin, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

// Not parallel: it swaps the package clock.
func TestGenerateToken_UsesClock(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	orig := now
	now = func() time.Time { return issued }
	t.Cleanup(func() { now = orig })

	secret := []byte("secret")
	tok, err := GenerateToken("u1", models.RoleAdmin, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("token issued 2h ago with 1h validity: expected common.ErrTokenExpired, got %v", err)
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		t.Fatalf("ParseUnverified error: %v", err)
	}
	if !claims.IssuedAt.Time.Equal(issued) {
		t.Fatalf("iat mismatch: got %v want %v", claims.IssuedAt.Time, issued)
	}
	if !claims.ExpiresAt.Time.Equal(issued.Add(time.Hour)) {
		t.Fatalf("exp mismatch: got %v want %v", claims.ExpiresAt.Time, issued.Add(time.Hour))
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", models.RoleUser, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "u3",
		Role:             models.RoleAdmin,
	})
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := ParseToken(s, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for HS512, got %v", err)
	}
}

func TestParseToken_RequiresExpiry(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u4", Role: models.RoleAdmin})
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := ParseToken(s, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for token without exp, got %v", err)
	}
}

func TestParseToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("u5", models.RoleUser, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	parts := strings.Split(tok, ".")
	forged, err := GenerateToken("u5", models.RoleAdmin, []byte("other"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	parts[1] = strings.Split(forged, ".")[1]

	if _, err := ParseToken(strings.Join(parts, "."), secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for tampered payload, got %v", err)
	}
}
