package handlers

import (
	"log"
	"net/http"

	"ayudamosBack/internal/services"
)

type CategoryHandler struct {
	Service  *services.CategoryService
	ErrorLog *log.Logger
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := h.Service.GetCategoryByID(r.Context(), id)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}
