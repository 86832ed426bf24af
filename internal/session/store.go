// Package session persists conversation sessions between turns.
package session

import (
	"context"
	"errors"
	"time"

	"loan-assistant/internal/models"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrBusy     = errors.New("session is processing another turn")
)

// Store keeps one session per conversation id. Lock serializes turns on a
// single session; the returned func releases it.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id string) error
	Lock(ctx context.Context, id string) (func(), error)
}

const (
	DefaultTTL      = 30 * time.Minute
	DefaultLockTTL  = 30 * time.Second
	DefaultLockWait = 5 * time.Second
)
