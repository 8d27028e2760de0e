package configuresession

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/pkg/enigma"
)

var (
	ErrSessionNotFound          = errors.New("session not found")
	ErrSessionBusy              = errors.New("session is busy")
	ErrNothingToConfigure       = errors.New("nothing to configure")
	ErrUnableToConfigureSession = errors.New("unable to configure session")
)

// Request lists the changes to apply, nil fields are left as they are
type Request struct {
	Name     *string
	Settings *enigma.Settings
}

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

func (uc UseCase) Execute(ctx context.Context, id uuid.UUID, req Request) (session.Session, error) {
	if req.Name == nil && req.Settings == nil {
		return session.Blank, ErrNothingToConfigure
	}

	updated, err := uc.sessionRepo.Update(ctx, id, func(s *session.Session) error {
		if req.Name != nil {
			if err := s.Rename(*req.Name); err != nil {
				return err
			}
		}
		if req.Settings != nil {
			if err := req.Settings.Validate(); err != nil {
				return err
			}
			s.Settings = *req.Settings
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidName), errors.Is(err, enigma.ErrInvalidSettings):
			return session.Blank, err
		case errors.Is(err, repositories.ErrSessionNotFound):
			return session.Blank, ErrSessionNotFound
		case errors.Is(err, repositories.ErrSessionBusy):
			return session.Blank, ErrSessionBusy
		default:
			uc.logger.Error().Err(err).Stringer("session", id).Msg("Failed to configure session")
			return session.Blank, ErrUnableToConfigureSession
		}
	}

	if pubErr := uc.eventBus.Publish(ctx, id, event.NewConfigured(id)); pubErr != nil {
		uc.logger.Warn().Err(pubErr).Stringer("session", id).Msg("Failed to publish configuration event")
	}

	return updated, nil
}
