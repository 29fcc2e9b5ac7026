package session

import (
	"context"
	"fmt"
	"sync"

	"log/slog"

	"github.com/oxblood/morph/internal/logging"
	"github.com/oxblood/morph/internal/reducer"
	"github.com/oxblood/morph/pkg/domain"
	"github.com/oxblood/morph/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates per-session document access. Each session's
// read-reduce-write cycle runs under its own lock; locks are reference
// counted so the map does not grow with dead sessions.
type Manager struct {
	store ports.DocumentStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks fired on every
// Dispatch.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// NewManager creates a new session Manager with the given persistence
// store.
func NewManager(store ports.DocumentStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID)
// after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it
// reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// Load retrieves an existing session's document from the store.
func (m *Manager) Load(ctx context.Context, sessionID string) (*domain.Document, error) {
	var doc *domain.Document
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		doc, err = m.store.Load(ctx, sessionID)
		return err
	})
	return doc, err
}

// LoadOrStart tries to load a session. If not found, it initializes a new
// one with the default document.
func (m *Manager) LoadOrStart(ctx context.Context, sessionID string) (*domain.Document, error) {
	var doc *domain.Document
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		doc, err = m.store.Load(ctx, sessionID)
		if err == nil {
			return nil
		}

		if err != domain.ErrSessionNotFound {
			return fmt.Errorf("failed to check session existence: %w", err)
		}

		doc = domain.New()

		// Persist immediately to reserve the ID
		if err := m.store.Save(ctx, sessionID, doc); err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		return nil
	})
	return doc, err
}

// Dispatch loads the session's document, applies one action, and persists
// the result, all under the session lock. It returns the resulting
// document.
func (m *Manager) Dispatch(ctx context.Context, sessionID string, action domain.Action) (*domain.Document, error) {
	var doc *domain.Document
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		prev, err := m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		next, err := reducer.Reduce(prev, action)
		if err != nil {
			m.logger.Error("action rejected", "session_id", sessionID, "action", action.Kind(), "err", err)
			fireRejected(ctx, m.hooks, action, err)
			return err
		}
		if next != prev {
			if err := m.store.Save(ctx, sessionID, next); err != nil {
				return fmt.Errorf("failed to persist session: %w", err)
			}
		}
		fireApplied(ctx, m.hooks, action, next != prev)
		doc = next
		return nil
	})
	return doc, err
}

// Save persists a document for the session.
func (m *Manager) Save(ctx context.Context, sessionID string, doc *domain.Document) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Save(ctx, sessionID, doc)
	})
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying document store.
func (m *Manager) Store() ports.DocumentStore {
	return m.store
}

// WithLock executes a function while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	return fn(ctx)
}
