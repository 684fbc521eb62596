package inventory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	repo := NewRepository(filepath.Join(t.TempDir(), "inventory.json"))
	return NewService(repo)
}

func TestService_CreateAssignsID(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), Item{Name: "Widget"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Errorf("expected a generated id")
	}
	if created.Name != "Widget" {
		t.Errorf("name %q; expected Widget", created.Name)
	}
}

func TestService_CreateKeepsProvidedID(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), Item{ID: "fixed", Name: "Widget"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != "fixed" {
		t.Errorf("id %q; expected fixed", created.ID)
	}
}

func TestService_CreateRequiresName(t *testing.T) {
	svc := newTestService(t)

	for _, name := range []string{"", "   "} {
		if _, err := svc.Create(context.Background(), Item{Name: name}); !errors.Is(err, ErrNameRequired) {
			t.Errorf("Create with name %q returned %v; expected ErrNameRequired", name, err)
		}
	}

	// Nothing was persisted.
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected 0 items, got %d", len(items))
	}
}

func TestService_CreateGeneratesDistinctIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		created, err := svc.Create(ctx, Item{Name: "x"})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %q", created.ID)
		}
		seen[created.ID] = true
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 20 {
		t.Errorf("expected 20 items, got %d", len(items))
	}
}
