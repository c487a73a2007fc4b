package enneabot

import (
	"context"
	"sync"
	"time"
)

// StoredResult is one persisted quiz outcome. Records are append-only and
// written on explicit user confirmation.
type StoredResult struct {
	UserID    string
	Name      string
	BasicType string
	Wing      string
	CreatedAt time.Time
}

// ResultStore is the persistence gateway for finalized quiz results.
type ResultStore interface {
	// Insert appends one result. Implementations fill CreatedAt when zero.
	Insert(ctx context.Context, r StoredResult) error

	// List returns all stored results in insertion order.
	List(ctx context.Context) ([]StoredResult, error)
}

// InMemoryResultStore is a thread-safe in-memory ResultStore for development
// and tests. Data is lost on restart.
type InMemoryResultStore struct {
	mu      sync.RWMutex
	results []StoredResult
}

// NewInMemoryResultStore creates an empty in-memory result store.
func NewInMemoryResultStore() *InMemoryResultStore {
	return &InMemoryResultStore{}
}

func (m *InMemoryResultStore) Insert(ctx context.Context, r StoredResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	m.results = append(m.results, r)
	return nil
}

func (m *InMemoryResultStore) List(ctx context.Context) ([]StoredResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]StoredResult, len(m.results))
	copy(out, m.results)
	return out, nil
}
