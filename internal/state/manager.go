package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrViewNotFound is returned for unknown or expired view ids.
var ErrViewNotFound = errors.New("view not found")

// DefaultTTL is how long an idle view is kept.
const DefaultTTL = 2 * time.Hour

// Manager owns all live views.
type Manager struct {
	mu       sync.RWMutex
	views    map[string]*View
	ttl      time.Duration
	onCreate func(*View)
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithTTL sets the idle lifetime of a view.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithOnCreate registers a hook run on every new view before it is returned.
func WithOnCreate(fn func(*View)) Option {
	return func(m *Manager) { m.onCreate = fn }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		views:  make(map[string]*View),
		ttl:    DefaultTTL,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new view for a visitor.
func (m *Manager) Create(visitorID string) *View {
	v := newView(uuid.NewString(), visitorID, m.now())
	if m.onCreate != nil {
		m.onCreate(v)
	}

	m.mu.Lock()
	m.views[v.ID] = v
	m.mu.Unlock()

	m.logger.Debug("view created", zap.String("view", v.ID), zap.String("visitor", visitorID))
	return v
}

// Get returns a live view and marks it as seen.
func (m *Manager) Get(id string) (*View, error) {
	m.mu.RLock()
	v, ok := m.views[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrViewNotFound, id)
	}
	v.touch(m.now())
	return v, nil
}

// Len returns the number of live views.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.views)
}

// Sweep drops views idle for longer than the TTL and returns how many went.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, v := range m.views {
		if v.idleSince().Before(cutoff) {
			delete(m.views, id)
			n++
		}
	}
	return n
}

// Run sweeps periodically until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = m.ttl / 4
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Debug("swept views", zap.Int("count", n), zap.Int("live", m.Len()))
			}
		}
	}
}
