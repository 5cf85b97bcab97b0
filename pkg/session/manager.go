package session

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pppp606/kamon"
	"github.com/pppp606/kamon/internal/logging"
	"github.com/pppp606/kamon/pkg/domain"
)

// entry pairs a workbench with its serialization mutex.
type entry struct {
	mu    sync.Mutex
	bench *kamon.Workbench
}

// Manager owns named drawing sessions, one Workbench each. The core is
// single-threaded by design, so the manager serializes all access to a
// session behind a per-session mutex; concurrent HTTP handlers can then
// drive the same drawing safely.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry

	benchOpts []kamon.Option
	logger    *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithWorkbenchOptions sets the options applied to every session's
// workbench on creation.
func WithWorkbenchOptions(opts ...kamon.Option) Option {
	return func(m *Manager) {
		m.benchOpts = opts
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates an empty session manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*entry),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new session and returns its ID.
func (m *Manager) Create() string {
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = &entry{bench: kamon.New(m.benchOpts...)}
	m.mu.Unlock()

	m.logger.Debug("session created", "session_id", id)
	return id
}

// With executes fn while holding the session's lock, serializing all
// access to its workbench. Returns domain.ErrSessionNotFound for an
// unknown ID.
func (m *Manager) With(id string, fn func(*kamon.Workbench) error) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %q: %w", id, domain.ErrSessionNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.bench)
}

// Delete removes a session. Returns domain.ErrSessionNotFound for an
// unknown ID.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("session %q: %w", id, domain.ErrSessionNotFound)
	}
	delete(m.sessions, id)
	m.logger.Debug("session deleted", "session_id", id)
	return nil
}

// List returns the active session IDs in stable order.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
