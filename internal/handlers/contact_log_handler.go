package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"ayudamosBack/internal/services"
)

type ContactLogHandler struct {
	Service  *services.ContactLogService
	ErrorLog *log.Logger
}

func (h *ContactLogHandler) RecordContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ServiceID     int    `json:"service_id"`
		ContactMethod string `json:"contact_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	log, err := h.Service.RecordContact(r.Context(), currentUserID(r), req.ServiceID, req.ContactMethod)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (h *ContactLogHandler) ListServiceContacts(w http.ResponseWriter, r *http.Request) {
	serviceID, err := paramInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	logs, err := h.Service.ListServiceContacts(r.Context(), serviceID, currentUserID(r))
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
