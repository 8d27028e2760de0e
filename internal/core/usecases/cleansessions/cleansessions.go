package cleansessions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/entities/filterset"
	"github.com/sergeii/enigma/internal/core/repositories"
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	eventBus    repositories.EventBus
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	eventBus repositories.EventBus,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

type Response struct {
	Count int
}

var NoResponse = Response{}

// Execute removes the sessions that have not been updated since until
func (uc UseCase) Execute(ctx context.Context, until time.Time) (Response, error) {
	var before, after int
	var removed []uuid.UUID
	var err error

	if before, err = uc.sessionRepo.Count(ctx); err != nil {
		return NoResponse, err
	}

	uc.logger.Info().
		Stringer("until", until).Int("sessions", before).
		Msg("Starting to clean outdated sessions")

	fs := filterset.NewSessionFilterSet().UpdatedBefore(until)
	if removed, err = uc.sessionRepo.Clear(ctx, fs); err != nil {
		uc.logger.Error().Err(err).Stringer("until", until).Msg("Unable to clean outdated sessions")
		return NoResponse, err
	}

	for _, id := range removed {
		if pubErr := uc.eventBus.Publish(ctx, id, event.NewRemoved(id)); pubErr != nil {
			uc.logger.Warn().Err(pubErr).Stringer("session", id).Msg("Failed to publish removal event")
		}
	}

	if after, err = uc.sessionRepo.Count(ctx); err != nil {
		return NoResponse, err
	}

	uc.logger.Info().
		Stringer("until", until).
		Int("removed", len(removed)).Int("before", before).Int("after", after).
		Msg("Finished cleaning outdated sessions")

	return Response{Count: len(removed)}, nil
}
