package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/logger"
)

// LocalStorage stores intake artifacts on the local filesystem under a
// single upload root with one fixed subdirectory per artifact kind.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath and
// idempotently creates the root plus the per-kind subdirectories.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create upload root")
		return nil, fmt.Errorf("failed to create upload root %s: %w", basePath, err)
	}

	for _, kind := range Kinds {
		dir := filepath.Join(basePath, kind.Dir())
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dir).Msg("Failed to create upload subdirectory")
			return nil, fmt.Errorf("failed to create upload subdirectory %s: %w", dir, err)
		}
	}
	logger.Info().Str("path", basePath).Msg("Upload directories ready")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveUpload validates the uploaded file against the kind's allow-list
// and writes it under the kind's subdirectory with a derived storage
// name. It returns the path relative to the upload root, which is what
// gets persisted on the student record.
func (ls *LocalStorage) SaveUpload(fileHeader *multipart.FileHeader, kind Kind, userID int64, at time.Time) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	if !AllowedFile(fileHeader.Filename, kind) {
		return "", apperrors.NewCustomError(apperrors.ErrInvalidFileType,
			fmt.Sprintf("Invalid file type for %s", kind))
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	name := StorageName(userID, kind, at, fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, kind.Dir(), name)

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

	relPath := filepath.Join(kind.Dir(), name)
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Int64("userID", userID).Msg("File saved")
	return relPath, nil
}

// ResolveDownload maps a kind and bare filename to the full filesystem
// path of a stored artifact. The filename is reduced to its base name so
// traversal segments cannot escape the kind directory. A missing file is
// ErrFileNotFound.
func (ls *LocalStorage) ResolveDownload(kind Kind, filename string) (string, error) {
	name := filepath.Base(filename)
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", apperrors.ErrFileNotFound
	}

	fullPath := filepath.Join(ls.basePath, kind.Dir(), name)
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrFileNotFound
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	return fullPath, nil
}

// BasePath returns the upload root.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
