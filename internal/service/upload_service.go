package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/FanSt3/naturale-api/internal/utils"
)

// MaxUploadSize caps uploaded files at 20MB.
const MaxUploadSize = 20 * 1024 * 1024

// allowedUploadTypes is the MIME allow-list for the upload endpoint.
var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadService stores uploaded images under the public uploads directory.
// Filenames get a random UUID prefix, so concurrent uploads never collide.
type UploadService struct {
	dir string
}

// NewUploadService constructs an UploadService writing into dir.
func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// Store validates and writes one uploaded file, returning the relative URL
// the client can reference in content.
func (s *UploadService) Store(header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", utils.ErrNoFile
	}
	if header.Size > MaxUploadSize {
		return "", utils.ErrFileTooLarge
	}
	if !allowedUploadTypes[header.Header.Get("Content-Type")] {
		return "", utils.ErrInvalidFileType
	}

	filename := fmt.Sprintf("%s-%s", uuid.New().String(), sanitizeFilename(header.Filename))

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	log.Info().Str("file", filename).Msg("File uploaded")
	return "/uploads/" + filename, nil
}

// sanitizeFilename strips path components and replaces whitespace so the
// stored name is safe to serve.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}
