// Package storage implements file persistence for delivery-proof photos on
// the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
)

const uploadDirPerm = 0o755

// LocalStorage implements ports.FileStorage against a single directory.
// Stored files get random names so uploads cannot collide or overwrite
// each other; only the extension of the original name is kept.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates the storage, creating the directory if needed.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if err := os.MkdirAll(dir, uploadDirPerm); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &LocalStorage{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes the content under a random name, keeping the original
// extension, and returns the stored file's reference.
func (s *LocalStorage) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	reference := uuid.NewString() + ext

	file, err := os.Create(filepath.Join(s.dir, reference))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err = io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err = file.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return reference, nil
}

// Remove deletes a stored file. References must be bare file names; paths
// pointing outside the directory are rejected.
func (s *LocalStorage) Remove(ctx context.Context, reference string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if reference == "" || filepath.Base(reference) != reference {
		return errs.NewValueIsInvalidError("reference")
	}

	err := os.Remove(filepath.Join(s.dir, reference))
	if errors.Is(err, os.ErrNotExist) {
		return errs.NewObjectNotFoundError("file", reference)
	}
	return err
}
