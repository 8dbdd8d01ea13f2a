package storefront

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskline/internal/compress"
	"deskline/internal/domain/shopper"
	"deskline/internal/shared/errors"
)

func newProfileService(profiles *mockProfileStore, compressor *mockCompressor, objects *mockObjectStorage) *ProfileService {
	if compressor == nil {
		compressor = &mockCompressor{
			CompressFunc: func(ctx context.Context, req compress.Request) (*compress.Result, error) {
				return &compress.Result{Data: req.Data, OriginalName: req.Name}, nil
			},
		}
	}
	if objects == nil {
		objects = &mockObjectStorage{
			StoreFunc: func(ctx context.Context, name string, data []byte) (string, error) {
				return "/uploads/" + name, nil
			},
		}
	}
	return NewProfileService(profiles, compressor, objects, &mockLogger{})
}

func TestProfileService_EnsureCreatesOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	profiles := newMockProfileStore()
	s := newProfileService(profiles, nil, nil)

	profile, err := s.Ensure(ctx, "u-1", "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)

	stored, err := profiles.Get(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestProfileService_EnsureReturnsExisting(t *testing.T) {
	ctx := context.Background()
	profiles := newMockProfileStore()
	require.NoError(t, profiles.Put(ctx, &shopper.Profile{UserID: "u-1", Name: "Original"}))

	s := newProfileService(profiles, nil, nil)

	profile, err := s.Ensure(ctx, "u-1", "Replacement", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Original", profile.Name, "an existing profile is never overwritten")
}

func TestProfileService_UpdatePersists(t *testing.T) {
	ctx := context.Background()
	profiles := newMockProfileStore()
	s := newProfileService(profiles, nil, nil)

	_, err := s.Ensure(ctx, "u-1", "Ada", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, &shopper.Profile{UserID: "u-1", Name: "Ada L.", Email: "ada@example.com"}))

	stored, err := s.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", stored.Name)
}

func TestProfileService_UploadAvatarCompressesAndUpdatesProfile(t *testing.T) {
	ctx := context.Background()
	profiles := newMockProfileStore()
	require.NoError(t, profiles.Put(ctx, &shopper.Profile{UserID: "u-1", Name: "Ada"}))

	var compressedWith float64
	compressor := &mockCompressor{
		CompressFunc: func(ctx context.Context, req compress.Request) (*compress.Result, error) {
			compressedWith = req.Quality
			return &compress.Result{Data: []byte("compressed"), OriginalName: req.Name}, nil
		},
	}
	var storedData []byte
	objects := &mockObjectStorage{
		StoreFunc: func(ctx context.Context, name string, data []byte) (string, error) {
			storedData = data
			return "/uploads/abc-" + name, nil
		},
	}

	s := newProfileService(profiles, compressor, objects)

	url, warning, err := s.UploadAvatar(ctx, "u-1", "me.png", []byte("original"))
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "/uploads/abc-me.png", url)
	assert.Equal(t, compress.DefaultQuality, compressedWith)
	assert.Equal(t, []byte("compressed"), storedData)

	stored, err := profiles.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc-me.png", stored.AvatarURL)
	assert.Equal(t, "Ada", stored.Name, "only the avatar field changes")
}

func TestProfileService_UploadAvatarFallsBackWhenCompressionFails(t *testing.T) {
	ctx := context.Background()
	profiles := newMockProfileStore()
	require.NoError(t, profiles.Put(ctx, &shopper.Profile{UserID: "u-1"}))

	compressor := &mockCompressor{
		CompressFunc: func(ctx context.Context, req compress.Request) (*compress.Result, error) {
			return nil, errors.NewWorkerError("unsupported image data")
		},
	}
	var storedData []byte
	objects := &mockObjectStorage{
		StoreFunc: func(ctx context.Context, name string, data []byte) (string, error) {
			storedData = data
			return "/uploads/" + name, nil
		},
	}

	s := newProfileService(profiles, compressor, objects)

	url, warning, err := s.UploadAvatar(ctx, "u-1", "me.bmp", []byte("original"))
	require.NoError(t, err, "a compression failure must not fail the upload")
	assert.NotEmpty(t, warning)
	assert.Equal(t, "/uploads/me.bmp", url)
	assert.Equal(t, []byte("original"), storedData, "original bytes uploaded instead")
}

func TestProfileService_UploadAvatarStorageFailure(t *testing.T) {
	ctx := context.Background()
	profiles := newMockProfileStore()

	objects := &mockObjectStorage{
		StoreFunc: func(ctx context.Context, name string, data []byte) (string, error) {
			return "", fmt.Errorf("disk full")
		},
	}

	s := newProfileService(profiles, nil, objects)

	_, _, err := s.UploadAvatar(ctx, "u-1", "me.png", []byte("original"))
	require.Error(t, err)
}
