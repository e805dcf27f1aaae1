package tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableside/internal/service"
	"tableside/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupPhotoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string][]byte{
		"dish_1.jpeg":    {0xff, 0xd8, 0xff, 0xe0, 0x01},
		"logo.png":       {0x89, 'P', 'N', 'G', 0x02},
		"default_4.jpeg": {0xff, 0xd8, 0xff, 0xe0, 0xff},
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestImageService_Photo(t *testing.T) {
	dir := setupPhotoDir(t)
	svc := service.NewImageService(dir, "default_4.jpeg", nil)
	ctx := context.Background()

	t.Run("serves_existing_file_with_its_mime_type", func(t *testing.T) {
		data, mime, err := svc.Photo(ctx, "logo.png")
		assert.NoError(t, err)
		assert.Equal(t, "image/png", mime)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G', 0x02}, data)
	})

	t.Run("unknown_path_falls_back_to_default_photo", func(t *testing.T) {
		data, mime, err := svc.Photo(ctx, "no_such_dish.jpeg")
		assert.NoError(t, err)
		assert.Equal(t, "image/jpeg", mime)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0, 0xff}, data)
	})

	t.Run("traversal_is_confined_to_the_static_folder", func(t *testing.T) {
		data, _, err := svc.Photo(ctx, "../../etc/passwd")
		assert.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0, 0xff}, data)
	})

	t.Run("error_when_even_the_default_is_missing", func(t *testing.T) {
		empty := service.NewImageService(t.TempDir(), "default_4.jpeg", nil)
		_, _, err := empty.Photo(ctx, "anything.jpeg")
		assert.ErrorIs(t, err, service.ErrImageNotFound)
	})
}

func TestImageService_Photo_UsesCache(t *testing.T) {
	dir := setupPhotoDir(t)
	mr := miniredis.RunT(t)
	cache := storage.NewPhotoCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)

	svc := service.NewImageService(dir, "default_4.jpeg", cache)
	ctx := context.Background()

	first, _, err := svc.Photo(ctx, "dish_1.jpeg")
	assert.NoError(t, err)

	// the file is gone, but the bytes are still served from redis
	assert.NoError(t, os.Remove(filepath.Join(dir, "dish_1.jpeg")))

	second, mime, err := svc.Photo(ctx, "dish_1.jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.Equal(t, first, second)
}
