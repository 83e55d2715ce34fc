package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"ayudamosBack/internal/models"
	"ayudamosBack/internal/services"
)

type ServiceHandler struct {
	Service  *services.ServiceService
	ErrorLog *log.Logger
}

// parseServiceFilter reads the listing query parameters. Absent prices stay
// nil so the repository skips their conditions entirely.
func parseServiceFilter(r *http.Request) models.ServiceFilter {
	q := r.URL.Query()
	f := models.ServiceFilter{
		CategoryID:   queryInt(r, "category_id"),
		Search:       q.Get("search"),
		Location:     q.Get("location"),
		VerifiedOnly: q.Get("verified_only") == "true",
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
		SortBy:       q.Get("sort_by"),
	}
	if v := q.Get("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &p
		}
	}
	if v := q.Get("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &p
		}
	}
	return f
}

func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.ListServices(r.Context(), parseServiceFilter(r))
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	service, err := h.Service.GetServiceByID(r.Context(), id, currentUserID(r))
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, service)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	service, err := h.Service.CreateService(r.Context(), currentUserID(r), req)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, service)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	var req models.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	service, err := h.Service.UpdateService(r.Context(), id, currentUserID(r), req)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, service)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	if err := h.Service.DeleteService(r.Context(), id, currentUserID(r)); err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "service deleted successfully"})
}

func (h *ServiceHandler) GetMyServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.GetMyServices(r.Context(), currentUserID(r))
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
