package watchsession

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sergeii/enigma/internal/core/repositories"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrUnableToObtainSession = errors.New("unable to obtain session from repository")
	ErrUnableToSubscribe     = errors.New("unable to subscribe to session events")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	eventBus    repositories.EventBus
}

func New(
	sessionRepo repositories.SessionRepository,
	eventBus repositories.EventBus,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		eventBus:    eventBus,
	}
}

// Execute subscribes to the events of an existing session.
// The subscription is made before the session is looked up,
// so its removal is never missed. The caller must close the returned stream
func (uc UseCase) Execute(ctx context.Context, id uuid.UUID) (repositories.EventStream, error) {
	stream, err := uc.eventBus.Subscribe(ctx, id)
	if err != nil {
		return nil, ErrUnableToSubscribe
	}

	if _, err = uc.sessionRepo.Get(ctx, id); err != nil {
		stream.Close() // nolint: errcheck
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		default:
			return nil, ErrUnableToObtainSession
		}
	}

	return stream, nil
}
