// Package inventory manages inventory items and their persistence.
package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Item represents one inventory record. All fields are strings; ImageURL is
// the relative path of a previously uploaded image, or empty.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// ErrCorruptStore is returned when the backing file exists but does not
// contain a valid JSON array. It is never recovered automatically.
var ErrCorruptStore = errors.New("inventory file is corrupt")

// Repository persists items as a JSON array in a single file. Every write
// replaces the whole file, so the file always holds a complete valid array
// after a successful call. A mutex serializes access; the read-modify-write
// in Append would otherwise lose updates under concurrent writers.
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository returns a Repository backed by the file at path. The file is
// created lazily on first append; a missing file reads as an empty list.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Append reads the current list, appends item, and atomically replaces the
// backing file with the new list.
func (r *Repository) Append(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.readLocked()
	if err != nil {
		return err
	}
	return r.writeLocked(append(items, item))
}

// List returns all items in insertion order. A missing file yields an empty
// slice, not an error.
func (r *Repository) List(ctx context.Context) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readLocked()
}

func (r *Repository) readLocked() ([]Item, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read inventory file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Item{}, nil
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return items, nil
}

// writeLocked marshals items to a temp file in the target directory and
// renames it over the backing file, so readers never observe a partial write.
func (r *Repository) writeLocked(items []Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create inventory directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".inventory-*")
	if err != nil {
		return fmt.Errorf("create temp inventory file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write inventory file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close inventory file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace inventory file: %w", err)
	}
	return nil
}
