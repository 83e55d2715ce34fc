package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"ayudamosBack/internal/models"
	"ayudamosBack/internal/services"
)

type PortfolioHandler struct {
	Service  *services.PortfolioService
	ErrorLog *log.Logger
}

func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Service.CreatePortfolio(r.Context(), currentUserID(r), req)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PortfolioHandler) ListServicePortfolios(w http.ResponseWriter, r *http.Request) {
	serviceID, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	portfolios, err := h.Service.ListServicePortfolios(r.Context(), serviceID)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, portfolios)
}

func (h *PortfolioHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid portfolio id")
		return
	}
	var req models.UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Service.UpdatePortfolio(r.Context(), id, currentUserID(r), req)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid portfolio id")
		return
	}
	if err := h.Service.DeletePortfolio(r.Context(), id, currentUserID(r)); err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "portfolio entry deleted successfully"})
}
