package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/stockroom/service/internal/storage"
)

// URLPrefix is the path under which stored images are served.
const URLPrefix = "/images/"

// ErrUnsupportedFormat is returned when an upload is not PNG, JPEG, or GIF.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrMissingFileName is returned when an upload carries no file name.
var ErrMissingFileName = errors.New("missing file name")

// Service contains business logic for storing and serving images.
type Service struct {
	store storage.Storage
}

// NewService creates a new image Service backed by the given storage.
func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

// Save validates the upload, stores it under a freshly generated unique name,
// and returns the relative URL of the stored image. The generated name is
// "<uuid>_<sanitized original name>", so saves never collide.
func (s *Service) Save(ctx context.Context, fileName, declaredType string, r io.Reader, size int64) (string, error) {
	if fileName == "" {
		return "", ErrMissingFileName
	}
	format := DetectFormat(declaredType, fileName)
	if format == FormatUnknown {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileName)
	}

	name := uuid.NewString() + "_" + sanitizeName(fileName)
	if err := s.store.Save(ctx, name, r, size, format.ContentType()); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return URLPrefix + name, nil
}

// Load opens a previously stored image by its generated name and returns its
// bytes together with the content type derived from the file extension.
// Returns storage.ErrNotFound when no such image exists.
func (s *Service) Load(ctx context.Context, name string) (io.ReadCloser, string, error) {
	rc, err := s.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("load image: %w", err)
	}
	return rc, ContentTypeFor(name), nil
}

// sanitizeName reduces an uploaded file name to a safe flat name: it drops any
// directory components and replaces everything outside [A-Za-z0-9._-].
func sanitizeName(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		}
		return '_'
	}, base)
}
