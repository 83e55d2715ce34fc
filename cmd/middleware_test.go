package main

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ayudamosBack/internal/models"
	"ayudamosBack/utils"
)

type stubUserFinder struct {
	existing map[int]bool
}

func (s *stubUserFinder) GetUserByID(ctx context.Context, id int) (models.User, error) {
	if s.existing[id] {
		return models.User{ID: id}, nil
	}
	return models.User{}, models.ErrUserNotFound
}

func newAuthTestApp(t *testing.T, existing ...int) *application {
	t.Helper()
	tokens, err := utils.NewManager("test-signing-key", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	users := &stubUserFinder{existing: map[int]bool{}}
	for _, id := range existing {
		users.existing[id] = true
	}
	return &application{
		errorLog: log.New(os.Stderr, "", 0),
		infoLog:  log.New(os.Stderr, "", 0),
		tokens:   tokens,
		users:    users,
	}
}

func TestRequireAuth(t *testing.T) {
	app := newAuthTestApp(t, 42)

	token, err := app.tokens.NewJWT(42)
	if err != nil {
		t.Fatal(err)
	}
	staleToken, err := app.tokens.NewJWT(999)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int
	}{
		{"valid token for existing user", "Bearer " + token, http.StatusOK, 42},
		{"token for deleted user", "Bearer " + staleToken, http.StatusUnauthorized, 0},
		{"missing header", "", http.StatusUnauthorized, 0},
		{"malformed header", "Token abc", http.StatusUnauthorized, 0},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = r.Context().Value("user_id").(int)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/services/my", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			app.requireAuth(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("user_id in context = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	app := newAuthTestApp(t, 7)

	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value("user_id").(int)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/services/1", nil)
	rec := httptest.NewRecorder()
	app.optionalAuth(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if gotUserID != 0 {
		t.Errorf("anonymous request must not carry a user id, got %d", gotUserID)
	}
}
