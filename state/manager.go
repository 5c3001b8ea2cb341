package state

import (
	"context"
	"sync"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/persistence"
)

// Manager hands out sessions keyed by owner ID. A session is created on
// first touch and hydrated from its adapter: guests from the local store,
// users from the remote store.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	local  persistence.Adapter
	remote persistence.Adapter
}

func NewManager(local, remote persistence.Adapter) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		local:    local,
		remote:   remote,
	}
}

// Guest returns the session for an unauthenticated owner, backed by the
// local snapshot store.
func (m *Manager) Guest(ctx context.Context, guestID string) *Session {
	return m.session(ctx, guestID, m.local)
}

// User returns the session for an authenticated owner, backed by the remote
// snapshot store.
func (m *Manager) User(ctx context.Context, userID string) *Session {
	return m.session(ctx, userID, m.remote)
}

// Invalidate drops a cached session so the next touch re-hydrates from
// storage. Called after merge-on-login rewrites the snapshots underneath a
// session, and for the guest session that was just merged away.
func (m *Manager) Invalidate(ownerID string) {
	m.mu.Lock()
	delete(m.sessions, ownerID)
	m.mu.Unlock()
}

func (m *Manager) session(ctx context.Context, ownerID string, adapter persistence.Adapter) *Session {
	m.mu.Lock()
	if s, ok := m.sessions[ownerID]; ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	// Hydrate outside the manager lock; adapter reads can hit the network.
	s := newSession(ctx, ownerID, adapter)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[ownerID]; ok {
		return existing
	}
	m.sessions[ownerID] = s
	return s
}
