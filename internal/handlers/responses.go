package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ayudamosBack/internal/models"
	"ayudamosBack/utils"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the service-layer sentinels onto HTTP statuses.
// Anything unmapped is a 500 with a generic body and the real error goes to
// the server's error log only.
func writeServiceError(l *log.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrMissingFields),
		errors.Is(err, models.ErrPriceRange),
		errors.Is(err, models.ErrInvalidRating),
		errors.Is(err, models.ErrAlreadyReviewed),
		errors.Is(err, models.ErrOwnServiceReview),
		errors.Is(err, models.ErrPasswordTooShort),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicatePhone),
		errors.Is(err, models.ErrNoFiles),
		errors.Is(err, models.ErrTooManyFiles),
		errors.Is(err, models.ErrFileTooLarge),
		errors.Is(err, models.ErrBadFileType),
		errors.Is(err, models.ErrInvalidFilename):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidPassword):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrNotServiceOwner),
		errors.Is(err, models.ErrNotReviewAuthor):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrCategoryNotFound),
		errors.Is(err, models.ErrServiceNotFound),
		errors.Is(err, models.ErrReviewNotFound),
		errors.Is(err, models.ErrPortfolioNotFound),
		errors.Is(err, models.ErrNoRecord),
		errors.Is(err, utils.ErrFileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		if l != nil {
			l.Output(2, err.Error())
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
