package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage implements Storage on a flat local directory.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates the directory if needed and returns a LocalStorage
// rooted at it.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory %q: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save writes the reader's bytes to a file named key inside the directory.
// The key must be a bare file name; anything path-like is rejected.
func (s *LocalStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := validKey(key); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(s.dir, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create file %q: %w", key, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("write file %q: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file %q: %w", key, err)
	}
	return nil
}

// Open returns a reader over the file stored under key.
func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open file %q: %w", key, err)
	}
	return f, nil
}

// Delete removes the file stored under key.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("remove file %q: %w", key, err)
	}
	return nil
}

// validKey rejects keys that would escape the storage directory.
func validKey(key string) error {
	if key == "" || key != filepath.Base(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
