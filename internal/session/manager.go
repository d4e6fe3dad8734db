// Package session holds per-browser application state (signed-in user, B2B
// mode, the seller's B2B draft order) behind a pluggable Store.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id produced by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Load returns the session state, or a zero State when none is stored yet.
func (m *Manager) Load(ctx context.Context, sessionID string) (*State, error) {
	st, err := m.store.Get(ctx, sessionID)
	if errors.Is(err, ErrSessionMiss) {
		return &State{}, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Update loads the state, applies fn and saves the result. Nothing is saved
// when fn fails.
func (m *Manager) Update(ctx context.Context, sessionID string, fn func(*State) error) (*State, error) {
	st, err := m.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	st.UpdatedAt = m.now().UTC()
	if err := m.store.Set(ctx, sessionID, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}
