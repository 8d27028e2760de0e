package listsessions

import (
	"context"
	"errors"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/pkg/slice"
)

var ErrUnableToObtainSessions = errors.New("unable to obtain sessions from repository")

type Request struct {
	// Limit caps the number of returned sessions, zero means no limit
	Limit int
}

type UseCase struct {
	sessionRepo repositories.SessionRepository
}

func New(sessionRepo repositories.SessionRepository) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute returns the sessions, the most recently updated first
func (uc UseCase) Execute(ctx context.Context, req Request) ([]session.Session, error) {
	sessions, err := uc.sessionRepo.List(ctx)
	if err != nil {
		return nil, ErrUnableToObtainSessions
	}
	return slice.TruncateSafe(sessions, req.Limit), nil
}
