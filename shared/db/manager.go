package db

import (
	"context"
	"database/sql"
	"sync"

	"github.com/rs/zerolog/log"
)

// State describes where the connection manager is in its lifecycle.
type State int

const (
	// StateUnattempted means no connection attempt has happened yet.
	StateUnattempted State = iota
	// StateConnected means the single attempt succeeded and the handle is live.
	StateConnected
	// StateUnavailable means either no configuration was found or the single
	// attempt failed. The manager stays here for the rest of the process.
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateUnattempted:
		return "unattempted"
	case StateConnected:
		return "connected"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// OpenFunc opens a live handle for a resolved descriptor.
type OpenFunc func(ctx context.Context, descriptor string) (*sql.DB, error)

// ConnectionManager owns the process-wide database handle. The connection
// is established lazily on the first Handle call and the outcome — success
// or failure — is memoized for the process lifetime. A failed attempt is
// never retried; retrying on every request would turn a store outage into
// request-path latency. Recovery is a process restart.
type ConnectionManager struct {
	resolver *ConfigResolver
	open     OpenFunc

	mu     sync.Mutex
	state  State
	handle *sql.DB
}

// NewConnectionManager wires a resolver to an opener. The opener is only
// invoked when the resolver produces a descriptor, and at most once.
func NewConnectionManager(resolver *ConfigResolver, open OpenFunc) *ConnectionManager {
	return &ConnectionManager{
		resolver: resolver,
		open:     open,
		state:    StateUnattempted,
	}
}

// Handle returns the live database handle, or nil when none is available.
// The first call may attempt a connection; every later call just returns
// the memoized result.
func (m *ConnectionManager) Handle(ctx context.Context) *sql.DB {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateUnattempted {
		m.attemptLocked(ctx)
	}
	return m.handle
}

// Available reports whether a live handle exists, attempting the connection
// first if it has not happened yet.
func (m *ConnectionManager) Available(ctx context.Context) bool {
	return m.Handle(ctx) != nil
}

// State returns the current lifecycle state without triggering a
// connection attempt. Used by the status probe so that probing does not
// connect on behalf of the request path.
func (m *ConnectionManager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close releases the handle if one was opened. Safe to call regardless of
// state; the manager does not become usable again afterwards.
func (m *ConnectionManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle == nil {
		return nil
	}
	err := m.handle.Close()
	m.handle = nil
	m.state = StateUnavailable
	return err
}

// attemptLocked performs the single transition out of StateUnattempted.
// Callers must hold m.mu.
func (m *ConnectionManager) attemptLocked(ctx context.Context) {
	descriptor, ok := m.resolver.Resolve()
	if !ok {
		log.Warn().Msg("No database configuration found; serving sample content only")
		m.state = StateUnavailable
		return
	}

	handle, err := m.open(ctx, descriptor)
	if err != nil {
		log.Error().Err(err).Msg("Database connection failed; serving sample content only")
		m.state = StateUnavailable
		return
	}

	log.Info().Msg("Database connection established")
	m.state = StateConnected
	m.handle = handle
}
