package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in process memory. States are copied on the
// way in and out so callers never share a value.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*State)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionMiss
	}
	return st.clone(), nil
}

func (m *MemoryStore) Set(_ context.Context, sessionID string, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = state.clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
