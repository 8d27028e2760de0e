package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/entities/filterset"
	"github.com/sergeii/enigma/internal/core/entities/session"
)

var (
	ErrSessionNotFound = errors.New("the requested session was not found")
	ErrSessionExists   = errors.New("session already exists")
	ErrSessionBusy     = errors.New("session is busy with another operation")
)

type SessionRepository interface {
	Add(ctx context.Context, s session.Session) error
	Get(ctx context.Context, id uuid.UUID) (session.Session, error)
	// Update applies fn to the stored session while holding the session lock.
	// The session is not saved if fn returns an error.
	// A session removed while fn runs stays removed and ErrSessionNotFound is returned
	Update(ctx context.Context, id uuid.UUID, fn func(*session.Session) error) (session.Session, error)
	Remove(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]session.Session, error)
	// Clear removes the sessions matching fs, returning the ids of the removed ones
	Clear(ctx context.Context, fs filterset.SessionFilterSet) ([]uuid.UUID, error)
	Count(ctx context.Context) (int, error)
}

type EventStream interface {
	Events() <-chan event.Event
	Close() error
}

type EventBus interface {
	Publish(ctx context.Context, id uuid.UUID, events ...event.Event) error
	Subscribe(ctx context.Context, id uuid.UUID) (EventStream, error)
}
