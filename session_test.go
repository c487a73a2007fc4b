package enneabot

import (
	"context"
	"testing"
)

func TestSession_Reset(t *testing.T) {
	s := NewSession("u1")
	s.Step = StepWing
	s.Name = "Alice"
	s.Answers = Answers{Q11: "1", Q12: "2", Q21: "1", Triple: "1-2-3"}
	s.BasicType = "5"
	s.Wing = "5w4"

	s.Reset()

	want := NewSession("u1")
	if *s != *want {
		t.Fatalf("reset session = %+v, want fresh", s)
	}
}

func TestInMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewInMemorySessionStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown user, got %+v", got)
	}

	s := NewSession("u1")
	s.Step = StepQ3
	s.Answers.Q11 = "1"
	if err := store.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Step != StepQ3 || got.Answers.Q11 != "1" {
		t.Fatalf("round-tripped session = %+v", got)
	}
}

func TestInMemorySessionStore_GetReturnsCopy(t *testing.T) {
	store := NewInMemorySessionStore()
	ctx := context.Background()

	s := NewSession("u1")
	s.Name = "Alice"
	store.Put(ctx, s)

	first, _ := store.Get(ctx, "u1")
	first.Name = "Mallory" // must not leak into the store without Put

	second, _ := store.Get(ctx, "u1")
	if second.Name != "Alice" {
		t.Fatalf("mutation leaked into store: %+v", second)
	}
}
