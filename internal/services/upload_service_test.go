package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ayudamosBack/internal/models"
	"ayudamosBack/utils"
)

// pngBytes is a minimal payload that http.DetectContentType reports as
// image/png.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()
	store, err := utils.NewLocalBlobStore(t.TempDir(), "/api/upload/files")
	if err != nil {
		t.Fatal(err)
	}
	return &UploadService{Store: store, MaxFileSize: 1024, MaxFiles: 3}
}

func TestUploadImages(t *testing.T) {
	s := newTestUploadService(t)
	ctx := context.Background()

	uploaded, err := s.UploadImages(ctx, []UploadInput{
		{Name: "before.png", Data: pngBytes},
		{Name: "after.png", Data: pngBytes},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(uploaded) != 2 {
		t.Fatalf("uploaded %d files, want 2", len(uploaded))
	}
	for _, u := range uploaded {
		if !strings.HasSuffix(u.StoredName, ".png") {
			t.Errorf("stored name %q should carry the detected extension", u.StoredName)
		}
		if u.StoredName == u.OriginalName {
			t.Errorf("stored name must not reuse the client-supplied name %q", u.OriginalName)
		}
		if !strings.HasPrefix(u.URL, "/api/upload/files/") {
			t.Errorf("unexpected URL %q", u.URL)
		}
		if _, err := s.Store.Stat(ctx, u.StoredName); err != nil {
			t.Errorf("stored file %q not retrievable: %v", u.StoredName, err)
		}
	}
}

func TestUploadImagesValidation(t *testing.T) {
	s := newTestUploadService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		files   []UploadInput
		wantErr error
	}{
		{"no files", nil, models.ErrNoFiles},
		{
			"too many files",
			[]UploadInput{{Data: pngBytes}, {Data: pngBytes}, {Data: pngBytes}, {Data: pngBytes}},
			models.ErrTooManyFiles,
		},
		{
			"oversized file",
			[]UploadInput{{Data: append(pngBytes, make([]byte, 2048)...)}},
			models.ErrFileTooLarge,
		},
		{
			"wrong type",
			[]UploadInput{{Name: "notes.txt", Data: []byte("just some text content")}},
			models.ErrBadFileType,
		},
		{
			"one bad file fails the batch",
			[]UploadInput{{Data: pngBytes}, {Data: []byte("plain text")}},
			models.ErrBadFileType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.UploadImages(ctx, tt.files); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUploadProfileImage(t *testing.T) {
	s := newTestUploadService(t)
	ctx := context.Background()

	uploaded, err := s.UploadProfileImage(ctx, UploadInput{Name: "me.png", Data: pngBytes})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(uploaded.StoredName, ".png") {
		t.Errorf("stored name %q should carry the detected extension", uploaded.StoredName)
	}

	if _, err := s.UploadProfileImage(ctx, UploadInput{Name: "cv.txt", Data: []byte("plain text résumé")}); !errors.Is(err, models.ErrBadFileType) {
		t.Fatalf("err = %v, want ErrBadFileType", err)
	}
}

func TestValidateFilename(t *testing.T) {
	valid := []string{"a.png", "9b2c1d.jpg", "photo-1.webp"}
	for _, name := range valid {
		if err := validateFilename(name); err != nil {
			t.Errorf("validateFilename(%q) = %v, want nil", name, err)
		}
	}
	invalid := []string{"", "../secret", "a/b.png", `a\b.png`, "..", "x..y"}
	for _, name := range invalid {
		if err := validateFilename(name); !errors.Is(err, models.ErrInvalidFilename) {
			t.Errorf("validateFilename(%q) = %v, want ErrInvalidFilename", name, err)
		}
	}
}
