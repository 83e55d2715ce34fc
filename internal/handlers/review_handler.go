package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"ayudamosBack/internal/models"
	"ayudamosBack/internal/services"
)

type ReviewHandler struct {
	Service  *services.ReviewService
	ErrorLog *log.Logger
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	review, err := h.Service.CreateReview(r.Context(), currentUserID(r), req)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}
	var req models.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	review, err := h.Service.UpdateReview(r.Context(), id, currentUserID(r), req)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}
	if err := h.Service.DeleteReview(r.Context(), id, currentUserID(r)); err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted successfully"})
}

func (h *ReviewHandler) ListServiceReviews(w http.ResponseWriter, r *http.Request) {
	serviceID, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	result, err := h.Service.ListServiceReviews(r.Context(), serviceID, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ReviewHandler) ListProviderReviews(w http.ResponseWriter, r *http.Request) {
	providerID, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	result, err := h.Service.ListProviderReviews(r.Context(), providerID, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ReviewHandler) GetServiceStats(w http.ResponseWriter, r *http.Request) {
	serviceID, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	stats, err := h.Service.GetServiceStats(r.Context(), serviceID)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
