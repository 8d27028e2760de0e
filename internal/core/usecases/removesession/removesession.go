package removesession

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrUnableToRemoveSession = errors.New("unable to remove session")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	eventBus    repositories.EventBus
	metrics     *metrics.Collector
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	eventBus repositories.EventBus,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		eventBus:    eventBus,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.sessionRepo.Remove(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return ErrSessionNotFound
		default:
			uc.logger.Error().Err(err).Stringer("session", id).Msg("Failed to remove session")
			return ErrUnableToRemoveSession
		}
	}

	uc.metrics.SessionsRemoved.Inc()

	// let the subscribers know they should hang up
	if err := uc.eventBus.Publish(ctx, id, event.NewRemoved(id)); err != nil {
		uc.logger.Warn().Err(err).Stringer("session", id).Msg("Failed to publish removal event")
	}

	return nil
}
