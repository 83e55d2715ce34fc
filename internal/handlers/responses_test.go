package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ayudamosBack/internal/models"
)

func TestWriteServiceErrorStatuses(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{models.ErrMissingFields, http.StatusBadRequest},
		{models.ErrAlreadyReviewed, http.StatusBadRequest},
		{models.ErrFileTooLarge, http.StatusBadRequest},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{models.ErrNotServiceOwner, http.StatusForbidden},
		{models.ErrNotReviewAuthor, http.StatusForbidden},
		{models.ErrServiceNotFound, http.StatusNotFound},
		{fmt.Errorf("loading review: %w", models.ErrReviewNotFound), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(log.New(&bytes.Buffer{}, "", 0), rr, tt.err)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

// Unmapped errors must not leak internals to the client, but the real cause
// has to land in the server's error log.
func TestWriteServiceErrorUnmapped(t *testing.T) {
	var buf bytes.Buffer
	rr := httptest.NewRecorder()

	writeServiceError(log.New(&buf, "", 0), rr, errors.New("dial tcp 127.0.0.1:3306: connection refused"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if body := rr.Body.String(); strings.Contains(body, "3306") {
		t.Errorf("response body leaks the underlying error: %s", body)
	}
	if !strings.Contains(rr.Body.String(), "internal server error") {
		t.Errorf("response body = %s, want generic message", rr.Body.String())
	}
	if !strings.Contains(buf.String(), "connection refused") {
		t.Errorf("error log = %q, want the underlying error recorded", buf.String())
	}
}
