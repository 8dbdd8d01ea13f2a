package storefront

import (
	"context"
	"fmt"

	"deskline/internal/compress"
	"deskline/internal/domain/shopper"
	"deskline/internal/infrastructure/storage"
	"deskline/internal/shared/logger"
)

// Compressor re-encodes an image before upload.
type Compressor interface {
	Compress(ctx context.Context, req compress.Request) (*compress.Result, error)
}

// ProfileService manages the per-user profile document and avatar
// uploads. Avatars are compressed before storage; if compression fails
// the original bytes are uploaded instead and the caller gets a warning,
// never a failed upload.
type ProfileService struct {
	profiles   shopper.ProfileStore
	compressor Compressor
	objects    storage.ObjectStorage
	logger     logger.Interface
}

func NewProfileService(profiles shopper.ProfileStore, compressor Compressor, objects storage.ObjectStorage, log logger.Interface) *ProfileService {
	return &ProfileService{
		profiles:   profiles,
		compressor: compressor,
		objects:    objects,
		logger:     log,
	}
}

// Ensure returns the user's profile, creating it on first access.
func (s *ProfileService) Ensure(ctx context.Context, userID, name, email string) (*shopper.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	profile, err = shopper.NewProfile(userID, name, email)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// Get returns the user's profile, or nil when none exists.
func (s *ProfileService) Get(ctx context.Context, userID string) (*shopper.Profile, error) {
	return s.profiles.Get(ctx, userID)
}

// Update overwrites the profile document.
func (s *ProfileService) Update(ctx context.Context, profile *shopper.Profile) error {
	if err := s.profiles.Put(ctx, profile); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// UploadAvatar compresses and stores an avatar image, then updates the
// profile with the stored URL. A compression failure degrades to an
// uncompressed upload; the returned warning is non-empty in that case.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID, name string, data []byte) (url, warning string, err error) {
	upload := data
	result, cerr := s.compressor.Compress(ctx, compress.Request{
		Data:    data,
		Name:    name,
		Quality: compress.DefaultQuality,
	})
	if cerr != nil {
		s.logger.Warnw("avatar compression failed, uploading original", "name", name, "error", cerr)
		warning = "Image could not be compressed; the original was uploaded instead."
	} else {
		upload = result.Data
	}

	url, err = s.objects.Store(ctx, name, upload)
	if err != nil {
		return "", "", fmt.Errorf("failed to store avatar: %w", err)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		profile = &shopper.Profile{UserID: userID}
	}
	profile.AvatarURL = url

	if err := s.profiles.Put(ctx, profile); err != nil {
		return "", "", fmt.Errorf("failed to save avatar URL: %w", err)
	}

	return url, warning, nil
}
