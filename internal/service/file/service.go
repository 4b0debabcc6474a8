package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadAttachment stores a report attachment under a unique name and
	// returns the stored path and its public URL.
	UploadAttachment(ctx context.Context, file io.Reader, filename, contentType string) (path string, url string, err error)

	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// UploadAttachment implements FileService.
func (s *fileServiceImpl) UploadAttachment(ctx context.Context, file io.Reader, filename, contentType string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extPattern.MatchString(ext) {
		ext = ""
	}

	// Generate unique filename
	name := uuid.New().String() + ext

	stored, err := s.storage.Upload(ctx, file, name, contentType)
	if err != nil {
		return "", "", fmt.Errorf("failed to upload attachment: %w", err)
	}
	return stored, s.storage.URL(stored), nil
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
