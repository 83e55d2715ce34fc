package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"

	"ayudamosBack/internal/models"
)

func TestManagerRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.NewJWT(42)
	if err != nil {
		t.Fatal(err)
	}
	userID, err := m.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
}

func TestManagerRejectsExpiredToken(t *testing.T) {
	const key = "test-signing-key"
	m, err := NewManager(key, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: 1,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		},
	})
	token, err := expired.SignedString([]byte(key))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestManagerRejectsForeignKey(t *testing.T) {
	m1, _ := NewManager("key-one", time.Hour)
	m2, _ := NewManager("key-two", time.Hour)

	token, err := m1.NewJWT(7)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m2.Parse(token); err == nil {
		t.Fatal("token signed with a different key must not parse")
	}
}

func TestManagerRejectsGarbage(t *testing.T) {
	m, _ := NewManager("test-signing-key", time.Hour)
	if _, err := m.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage input: err = %v, want ErrInvalidToken", err)
	}
}

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager("", time.Hour); err == nil {
		t.Fatal("empty signing key must be rejected")
	}
}
