package history

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"medirisk/domain/risk"
)

func TestMemoryStore_NewestFirst(t *testing.T) {
	store := NewMemoryStore(10)
	ctx := context.Background()

	first := &risk.Assessment{ID: uuid.New(), Probability: 0.1}
	second := &risk.Assessment{ID: uuid.New(), Probability: 0.2}
	if err := store.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].ID != second.ID {
		t.Error("expected newest assessment first")
	}
}

func TestMemoryStore_EvictsPastCapacity(t *testing.T) {
	store := NewMemoryStore(3)
	ctx := context.Background()

	var last *risk.Assessment
	for i := 0; i < 5; i++ {
		last = &risk.Assessment{ID: uuid.New()}
		if err := store.Save(ctx, last); err != nil {
			t.Fatal(err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected capacity 3, got %d", count)
	}

	recent, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if recent[0].ID != last.ID {
		t.Error("expected most recent assessment retained")
	}
}

func TestMemoryStore_RecentLimit(t *testing.T) {
	store := NewMemoryStore(10)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := store.Save(ctx, &risk.Assessment{ID: uuid.New()}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 entries, got %d", len(recent))
	}
}
