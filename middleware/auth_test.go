package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestParseTokenString(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-that-is-long-enough-123456")

	raw := signToken(t, "test-secret-that-is-long-enough-123456", jwt.MapClaims{
		"user_id":  float64(7),
		"username": "eco_bola",
		"is_admin": false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	claims, err := ParseTokenString(raw)
	if err != nil {
		t.Fatalf("ParseTokenString failed: %v", err)
	}
	if claims["username"] != "eco_bola" {
		t.Errorf("username claim = %v, want eco_bola", claims["username"])
	}
	if id, ok := claims["user_id"].(float64); !ok || uint(id) != 7 {
		t.Errorf("user_id claim = %v, want 7", claims["user_id"])
	}
}

func TestParseTokenStringRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-that-is-long-enough-123456")

	raw := signToken(t, "test-secret-that-is-long-enough-123456", jwt.MapClaims{
		"user_id": float64(7),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := ParseTokenString(raw); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestParseTokenStringRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-that-is-long-enough-123456")

	raw := signToken(t, "a-completely-different-secret-456789", jwt.MapClaims{
		"user_id": float64(7),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	if _, err := ParseTokenString(raw); err == nil {
		t.Fatal("token signed with wrong secret accepted")
	}
}
