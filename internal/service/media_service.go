package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// MaxUploadBytes caps the size of a single uploaded image.
const MaxUploadBytes = 8 << 20

var (
	// ErrUploadTooLarge is returned when an upload exceeds MaxUploadBytes.
	ErrUploadTooLarge = errors.New("upload exceeds size limit")
	// ErrUnsupportedImage is returned when an upload is not a decodable jpeg, png, gif or webp image.
	ErrUnsupportedImage = errors.New("unsupported image format")
)

var imageExtensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// StoredMedia describes an image written to the upload directory.
type StoredMedia struct {
	URL    string `json:"url"`
	Name   string `json:"name"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

// MediaService stores uploaded images for profile photos, testimonials and posts.
type MediaService struct {
	dir     string
	urlPath string
	now     func() time.Time
}

// NewMediaService stores files under dir and serves them below urlPath.
func NewMediaService(dir, urlPath string) *MediaService {
	return &MediaService{
		dir:     dir,
		urlPath: "/" + strings.Trim(urlPath, "/"),
		now:     time.Now,
	}
}

// Save validates that r holds a supported image and writes it under a generated name.
// The file extension follows the detected format, not the client's filename.
func (s *MediaService) Save(r io.Reader) (*StoredMedia, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrUploadTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedImage
	}
	ext, ok := imageExtensions[format]
	if !ok || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrUnsupportedImage
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", s.now().Format("20060102"), uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &StoredMedia{
		URL:    path.Join(s.urlPath, name),
		Name:   name,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   int64(len(data)),
	}, nil
}
