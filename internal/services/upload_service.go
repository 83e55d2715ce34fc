package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"ayudamosBack/internal/models"
	"ayudamosBack/utils"
)

// UploadInput is one file from a multipart request.
type UploadInput struct {
	Name string
	Data []byte
}

// UploadedFile is what the client gets back per stored file.
type UploadedFile struct {
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type UploadService struct {
	Store       utils.BlobStore
	MaxFileSize int64
	MaxFiles    int
}

// UploadImages validates the whole batch before storing anything, so one bad
// file rejects the request without leaving partial state behind. Stored
// names are random; the original name only survives in the response.
func (s *UploadService) UploadImages(ctx context.Context, files []UploadInput) ([]UploadedFile, error) {
	if len(files) == 0 {
		return nil, models.ErrNoFiles
	}
	if len(files) > s.MaxFiles {
		return nil, models.ErrTooManyFiles
	}

	types := make([]string, len(files))
	for i, f := range files {
		if int64(len(f.Data)) > s.MaxFileSize {
			return nil, models.ErrFileTooLarge
		}
		contentType := http.DetectContentType(f.Data)
		if _, ok := imageExtensions[contentType]; !ok {
			return nil, models.ErrBadFileType
		}
		types[i] = contentType
	}

	uploaded := make([]UploadedFile, 0, len(files))
	for i, f := range files {
		name := uuid.New().String() + imageExtensions[types[i]]
		url, err := s.Store.Upload(ctx, name, f.Data, types[i])
		if err != nil {
			// undo the files already stored in this batch
			for _, u := range uploaded {
				s.Store.Delete(ctx, u.StoredName)
			}
			return nil, err
		}
		uploaded = append(uploaded, UploadedFile{
			OriginalName: f.Name,
			StoredName:   name,
			URL:          url,
			Size:         int64(len(f.Data)),
		})
	}
	return uploaded, nil
}

// UploadProfileImage stores a single avatar image under the same size and
// type rules as the batch endpoint.
func (s *UploadService) UploadProfileImage(ctx context.Context, file UploadInput) (UploadedFile, error) {
	uploaded, err := s.UploadImages(ctx, []UploadInput{file})
	if err != nil {
		return UploadedFile{}, err
	}
	return uploaded[0], nil
}

// validateFilename rejects anything that could escape the storage namespace.
func validateFilename(name string) error {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") ||
		strings.Contains(name, "..") {
		return models.ErrInvalidFilename
	}
	return nil
}

func (s *UploadService) DeleteFile(ctx context.Context, name string) error {
	if err := validateFilename(name); err != nil {
		return err
	}
	return s.Store.Delete(ctx, name)
}

func (s *UploadService) GetFileInfo(ctx context.Context, name string) (utils.FileInfo, error) {
	if err := validateFilename(name); err != nil {
		return utils.FileInfo{}, err
	}
	return s.Store.Stat(ctx, name)
}
