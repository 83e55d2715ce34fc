package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ayudamosBack/internal/models"
)

// userFinder is the slice of the user repository the auth middleware needs
// to confirm a token's subject still exists.
type userFinder interface {
	GetUserByID(ctx context.Context, id int) (models.User, error)
}

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireAuth rejects the request unless it carries a valid bearer token for
// a user that still exists, and puts that user id into the request context.
// Signature checks alone would let a stale token for a deleted account reach
// the handlers.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "Authorization header missing or invalid", http.StatusUnauthorized)
			return
		}
		userID, err := app.tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}
		if _, err := app.users.GetUserByID(r.Context(), userID); err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}
			app.serverError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), "user_id", userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth resolves the user id when a valid token is present but lets
// anonymous requests through untouched. Used on public reads that behave
// slightly differently for the owner, like the service detail view counter.
func (app *application) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			if userID, err := app.tokens.Parse(strings.TrimPrefix(authHeader, "Bearer ")); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), "user_id", userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}
