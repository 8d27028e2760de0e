package getsession

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrUnableToObtainSession = errors.New("unable to obtain session from repository")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
}

func New(sessionRepo repositories.SessionRepository) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
	}
}

func (uc UseCase) Execute(ctx context.Context, id uuid.UUID) (session.Session, error) {
	s, err := uc.sessionRepo.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return session.Blank, ErrSessionNotFound
		default:
			return session.Blank, ErrUnableToObtainSession
		}
	}
	return s, nil
}
