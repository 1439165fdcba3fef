// Package disk provides the local-filesystem implementation of the image
// storage port.
package disk

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"punarvasthra/internal/core/ports"
)

// Storage removes uploaded files from a base directory on the local disk.
type Storage struct {
	baseDir string
}

var _ ports.Storage = (*Storage)(nil)

// NewStorage creates a storage rooted at baseDir.
func NewStorage(baseDir string) *Storage {
	return &Storage{baseDir: baseDir}
}

// Delete removes the file at the given path relative to the base directory.
// A missing file is not an error; the record's image is gone either way.
func (s *Storage) Delete(_ context.Context, path string) error {
	full := filepath.Join(s.baseDir, filepath.Clean(path))

	err := os.Remove(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
