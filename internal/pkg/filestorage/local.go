package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/campushq/roster/internal/pkg/apperrors"
	"github.com/campushq/roster/internal/pkg/logger"
)

// MaxFileSize is the upload cap for identity documents.
const MaxFileSize = 5 << 20 // 5 MiB

// allowedTokens mirrors the legacy jpeg|jpg|png|pdf filter. Both the filename
// extension and the declared MIME type must match (AND semantics).
var allowedTokens = []string{"jpeg", "jpg", "png", "pdf"}

// LocalStorage persists identity documents on the local filesystem.
// Storage is append-only: files are never updated or deleted in place.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the storage directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Save validates and persists an uploaded file, returning the stored name.
// Names get a millisecond timestamp prefix so repeated uploads of the same
// document never collide.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if err := ValidateUpload(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fileHeader.Filename))
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("File saved")
	return storedName, nil
}

// Resolve maps a stored name to its filesystem path for read access.
func (ls *LocalStorage) Resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", apperrors.ErrFileNotFound
	}

	fullPath := filepath.Join(ls.basePath, name)
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrFileNotFound
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	return fullPath, nil
}

// ValidateUpload enforces the type and size gate without touching the disk.
func ValidateUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxFileSize {
		return apperrors.ErrFileTooLarge
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	mimeType := strings.ToLower(fileHeader.Header.Get("Content-Type"))

	if !hasAllowedToken(ext) || !hasAllowedToken(mimeType) {
		return apperrors.ErrUnsupportedFileType
	}

	return nil
}

func hasAllowedToken(s string) bool {
	for _, token := range allowedTokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// sanitizeFilename keeps the original name recognizable while stripping
// anything that could escape the storage directory.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
