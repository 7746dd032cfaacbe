// Package state persists the few per-visitor facts that outlive a session.
//
// Navigation state is never stored. The only persisted fact is whether a
// visitor has dismissed the intro overlay.
package state

import (
	"context"
	"sync"
)

// IntroStore records intro dismissal per visitor.
type IntroStore interface {
	// IntroDismissed reports whether the visitor dismissed the intro.
	IntroDismissed(ctx context.Context, visitorID string) (bool, error)
	// DismissIntro records the dismissal. Dismissing twice is not an error.
	DismissIntro(ctx context.Context, visitorID string) error
	Close() error
}

// MemoryStore is an IntroStore that forgets everything on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	dismissed map[string]bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{dismissed: make(map[string]bool)}
}

// IntroDismissed implements IntroStore.
func (m *MemoryStore) IntroDismissed(_ context.Context, visitorID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dismissed[visitorID], nil
}

// DismissIntro implements IntroStore.
func (m *MemoryStore) DismissIntro(_ context.Context, visitorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dismissed[visitorID] = true
	return nil
}

// Close implements IntroStore.
func (m *MemoryStore) Close() error { return nil }

var (
	_ IntroStore = (*MemoryStore)(nil)
	_ IntroStore = (*SQLiteStore)(nil)
)
