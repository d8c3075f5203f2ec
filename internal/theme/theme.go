// Package theme holds the light/dark display preference of a visitor.
package theme

import (
	"context"
	"sync"
)

// Theme is a display theme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Key is the preference name the theme is stored under.
const Key = "theme"

// Parse reads a stored value. Anything other than "dark" is Light.
func Parse(s string) Theme {
	if Theme(s) == Dark {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon returns the icon class shown on the toggle: a moon while light, a sun
// while dark.
func (t Theme) Icon() string {
	if t == Dark {
		return "fas fa-sun"
	}
	return "fas fa-moon"
}

func (t Theme) String() string { return string(t) }

// Store persists themes per visitor. Get returns Light for unknown visitors.
type Store interface {
	Get(ctx context.Context, visitorID string) (Theme, error)
	Set(ctx context.Context, visitorID string, t Theme) error
}

// MemoryStore is a Store backed by a map.
type MemoryStore struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{themes: make(map[string]Theme)}
}

func (m *MemoryStore) Get(_ context.Context, visitorID string) (Theme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.themes[visitorID]; ok {
		return t, nil
	}
	return Light, nil
}

func (m *MemoryStore) Set(_ context.Context, visitorID string, t Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes[visitorID] = t
	return nil
}
