// Package storage provides object storage for uploaded files. The local
// filesystem implementation writes under a configured directory and returns
// a relative URL for the stored object.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"deskline/internal/shared/config"
)

type ObjectStorage interface {
	// Store writes data and returns the URL it is reachable at.
	Store(ctx context.Context, name string, data []byte) (string, error)
}

type FileStorage struct {
	dir string
}

func NewFileStorage(cfg *config.StorageConfig) (*FileStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStorage{dir: cfg.Dir}, nil
}

func (s *FileStorage) Store(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Prefix with a uuid so concurrent uploads of the same filename
	// never clobber each other.
	stored := uuid.NewString() + "-" + filepath.Base(name)
	path := filepath.Join(s.dir, stored)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write object %q: %w", name, err)
	}

	return "/uploads/" + stored, nil
}
