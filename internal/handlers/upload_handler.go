package handlers

import (
	"io"
	"log"
	"net/http"

	"ayudamosBack/internal/models"
	"ayudamosBack/internal/services"
)

type UploadHandler struct {
	Service  *services.UploadService
	ErrorLog *log.Logger
}

// multipartOverhead covers boundaries, part headers and form fields beyond
// the file payloads themselves.
const multipartOverhead = 1 << 20

// maxBatchBytes is the hard cap on an image-batch request body; everything
// past it is cut off at the transport before any buffering.
func (h *UploadHandler) maxBatchBytes() int64 {
	return h.Service.MaxFileSize*int64(h.Service.MaxFiles) + multipartOverhead
}

// readParts buffers the named multipart file parts, rejecting the batch on
// declared sizes and count before a single byte of payload is read.
func (h *UploadHandler) readParts(r *http.Request, field string) ([]services.UploadInput, error) {
	parts := r.MultipartForm.File[field]
	if len(parts) > h.Service.MaxFiles {
		return nil, models.ErrTooManyFiles
	}
	for _, fh := range parts {
		if fh.Size > h.Service.MaxFileSize {
			return nil, models.ErrFileTooLarge
		}
	}

	var inputs []services.UploadInput
	for _, fh := range parts {
		file, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, services.UploadInput{Name: fh.Filename, Data: data})
	}
	return inputs, nil
}

// UploadImages accepts a multipart form with one or more "images" parts and
// returns the stored names and public URLs.
func (h *UploadHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBatchBytes())
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid or oversized multipart form")
		return
	}

	inputs, err := h.readParts(r, "images")
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}

	uploaded, err := h.Service.UploadImages(r.Context(), inputs)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "files uploaded successfully",
		"files":   uploaded,
	})
}

// UploadProfileImage accepts a single "profileImage" part and returns its
// stored name and URL.
func (h *UploadHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Service.MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid or oversized multipart form")
		return
	}
	parts := r.MultipartForm.File["profileImage"]
	if len(parts) == 0 {
		writeError(w, http.StatusBadRequest, "profileImage file is required")
		return
	}
	if parts[0].Size > h.Service.MaxFileSize {
		writeServiceError(h.ErrorLog, w, models.ErrFileTooLarge)
		return
	}

	file, err := parts[0].Open()
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to open uploaded file")
		return
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	uploaded, err := h.Service.UploadProfileImage(r.Context(), services.UploadInput{
		Name: parts[0].Filename,
		Data: data,
	})
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "file uploaded successfully",
		"file":    uploaded,
	})
}

func (h *UploadHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get(":name")
	if err := h.Service.DeleteFile(r.Context(), name); err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "file deleted successfully"})
}

func (h *UploadHandler) GetFileInfo(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get(":name")
	info, err := h.Service.GetFileInfo(r.Context(), name)
	if err != nil {
		writeServiceError(h.ErrorLog, w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
