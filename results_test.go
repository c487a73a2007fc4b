package enneabot

import (
	"context"
	"testing"
)

func TestInMemoryResultStore_InsertionOrder(t *testing.T) {
	store := NewInMemoryResultStore()
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		if err := store.Insert(ctx, StoredResult{Name: name, BasicType: "5", Wing: "5w4"}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	results, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []string{"Alice", "Bob", "Carol"} {
		if results[i].Name != want {
			t.Fatalf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
		if results[i].CreatedAt.IsZero() {
			t.Fatalf("results[%d] missing CreatedAt", i)
		}
	}
}
