package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"ayudamosBack/internal/services"
	"ayudamosBack/utils"
)

// pngBytes is a minimal payload that http.DetectContentType reports as
// image/png.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func newTestUploadHandler(t *testing.T) *UploadHandler {
	t.Helper()
	store, err := utils.NewLocalBlobStore(t.TempDir(), "/api/upload/files")
	if err != nil {
		t.Fatal(err)
	}
	return &UploadHandler{
		Service:  &services.UploadService{Store: store, MaxFileSize: 1024, MaxFiles: 3},
		ErrorLog: log.New(io.Discard, "", 0),
	}
}

// countingReader tracks how much of the request body the server actually
// consumed.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countingReader) Close() error { return nil }

// multipartBody builds a multipart form with count copies of payload under
// the given field name.
func multipartBody(t *testing.T, field string, count int, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i := 0; i < count; i++ {
		part, err := w.CreateFormFile(field, "photo.png")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadImagesAccepted(t *testing.T) {
	h := newTestUploadHandler(t)

	body, contentType := multipartBody(t, "images", 2, pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/images", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImages(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	var resp struct {
		Files []services.UploadedFile `json:"files"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Files) != 2 {
		t.Fatalf("uploaded %d files, want 2", len(resp.Files))
	}
}

func TestUploadImagesRejectsOverCountBatch(t *testing.T) {
	h := newTestUploadHandler(t)

	body, contentType := multipartBody(t, "images", 5, pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/images", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImages(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestUploadImagesRejectsOversizedPart(t *testing.T) {
	h := newTestUploadHandler(t)

	payload := append(pngBytes, make([]byte, 2048)...)
	body, contentType := multipartBody(t, "images", 1, payload)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/images", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImages(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// A body far over the batch cap must be cut off at the transport, not read
// to its end before the request is rejected.
func TestUploadImagesBoundsBodyConsumption(t *testing.T) {
	h := newTestUploadHandler(t)

	payload := append(pngBytes, make([]byte, 512<<10)...)
	body, contentType := multipartBody(t, "images", 8, payload)
	total := int64(body.Len())
	limit := h.maxBatchBytes()
	if total <= limit {
		t.Fatalf("test body of %d bytes does not exceed the %d byte cap", total, limit)
	}

	cr := &countingReader{r: body}
	req := httptest.NewRequest(http.MethodPost, "/api/upload/images", cr)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImages(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if cr.n >= total {
		t.Fatalf("server consumed the whole %d byte body; want it cut off near the %d byte cap", total, limit)
	}
	if cr.n > limit+1 {
		t.Fatalf("server consumed %d bytes, want at most %d", cr.n, limit+1)
	}
}

func TestUploadProfileImageRejectsOversizedPart(t *testing.T) {
	h := newTestUploadHandler(t)

	payload := append(pngBytes, make([]byte, 2048)...)
	body, contentType := multipartBody(t, "profileImage", 1, payload)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/profile-image", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadProfileImage(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
