package store

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	enneabot "github.com/ennealab/enneabot-go"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLResultStore_InsertAndList(t *testing.T) {
	db := openTestDB(t)
	s, err := NewSQLResultStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	results, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty store, got %d rows", len(results))
	}

	inserts := []enneabot.StoredResult{
		{UserID: "u1", Name: "Alice", BasicType: "5", Wing: "5w4"},
		{UserID: "u2", Name: "Bob", BasicType: "9", Wing: "9w1"},
	}
	for _, r := range inserts {
		if err := s.Insert(ctx, r); err != nil {
			t.Fatalf("insert %s: %v", r.Name, err)
		}
	}

	results, err = s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d rows, want 2", len(results))
	}
	for i, want := range inserts {
		got := results[i]
		if got.UserID != want.UserID || got.Name != want.Name ||
			got.BasicType != want.BasicType || got.Wing != want.Wing {
			t.Fatalf("row %d = %+v, want %+v", i, got, want)
		}
		if got.CreatedAt.IsZero() {
			t.Fatalf("row %d missing CreatedAt", i)
		}
	}
}

func TestSQLResultStore_CustomTable(t *testing.T) {
	db := openTestDB(t)
	s, err := NewSQLResultStore(db, SQLStoreConfig{Table: "quiz_results", AutoMigrate: true})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := s.Insert(ctx, enneabot.StoredResult{Name: "Alice", BasicType: "1", Wing: "1w9"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	results, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 1 || results[0].Wing != "1w9" {
		t.Fatalf("results = %+v", results)
	}
}

func TestSQLResultStore_NoAutoMigrate(t *testing.T) {
	db := openTestDB(t)
	s, err := NewSQLResultStore(db, SQLStoreConfig{AutoMigrate: false})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// Without the table, writes must surface the storage failure.
	if err := s.Insert(context.Background(), enneabot.StoredResult{Name: "Alice"}); err == nil {
		t.Fatal("expected insert error on missing table")
	}
}
