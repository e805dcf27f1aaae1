package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var photoMIMETypes = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
}

// ImageService serves dish and restaurant photos from the static folder,
// falling back to a default image for unknown paths.
type ImageService struct {
	staticDir    string
	defaultPhoto string
	cache        PhotoCache
}

// NewImageService builds the photo reader. cache may be nil.
func NewImageService(staticDir, defaultPhoto string, cache PhotoCache) *ImageService {
	return &ImageService{staticDir: staticDir, defaultPhoto: defaultPhoto, cache: cache}
}

func (s *ImageService) Photo(ctx context.Context, path string) ([]byte, string, error) {
	// Keep the lookup inside the static folder.
	clean := filepath.Join(s.staticDir, filepath.Clean("/"+path))
	if !strings.HasPrefix(clean, filepath.Clean(s.staticDir)) {
		clean = filepath.Join(s.staticDir, s.defaultPhoto)
	}

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, s.cache.PhotoKey(path)); err == nil && len(data) > 0 {
			return data, mimeFor(path), nil
		}
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		fallback := filepath.Join(s.staticDir, s.defaultPhoto)
		data, err = os.ReadFile(fallback)
		if err != nil {
			return nil, "", ErrImageNotFound
		}
		return data, mimeFor(s.defaultPhoto), nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cache.PhotoKey(path), data); err != nil {
			log.Printf("Warning: failed to cache photo %q: %v", path, err)
		}
	}

	return data, mimeFor(path), nil
}

func mimeFor(path string) string {
	if mime, ok := photoMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mime
	}
	return "image/jpeg"
}

var _ ImageServiceInterface = (*ImageService)(nil)
