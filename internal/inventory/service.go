package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNameRequired is returned when an item is created without a name.
var ErrNameRequired = errors.New("name is required")

// Service contains business logic for inventory management.
type Service struct {
	repo *Repository
}

// NewService creates a new inventory Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the item, assigns a fresh unique ID when none is set, and
// appends it to the store. Items are immutable after creation.
func (s *Service) Create(ctx context.Context, item Item) (Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return Item{}, ErrNameRequired
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.repo.Append(ctx, item); err != nil {
		return Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// List returns all items in creation order.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// IsCorrupt returns true when the error indicates an unreadable backing file.
func (s *Service) IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorruptStore)
}
