// Package localstore is a small durable key-value store playing the role
// browser localStorage played for the original front ends. It is backed by
// its own sqlite database so client services keep state across restarts.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deskline/internal/infrastructure/persistence/models"
	"deskline/internal/shared/config"
)

type Store struct {
	db *gorm.DB
}

func Open(cfg *config.LocalStoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create local store directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if err := db.AutoMigrate(&models.LocalKVModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the stored value, or "" with no error when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var model models.LocalKVModel

	if err := s.db.WithContext(ctx).First(&model, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read local store key %q: %w", key, err)
	}

	return model.Value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	model := models.LocalKVModel{Key: key, Value: value}

	if err := s.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to write local store key %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&models.LocalKVModel{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete local store key %q: %w", key, err)
	}

	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
