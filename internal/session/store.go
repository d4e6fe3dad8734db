package session

import (
	"context"
	"errors"
)

type Store interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Set(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

var ErrSessionMiss = errors.New("session miss")
