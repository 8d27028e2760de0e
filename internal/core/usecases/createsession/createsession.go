package createsession

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/pkg/enigma"
)

var ErrUnableToCreateSession = errors.New("unable to create session")

type Request struct {
	Name     string
	Settings enigma.Settings
}

type UseCase struct {
	sessionRepo repositories.SessionRepository
	clock       clockwork.Clock
	metrics     *metrics.Collector
}

func New(
	sessionRepo repositories.SessionRepository,
	clock clockwork.Clock,
	metrics *metrics.Collector,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		clock:       clock,
		metrics:     metrics,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) (session.Session, error) {
	s, err := session.New(req.Name, req.Settings, uc.clock.Now())
	if err != nil {
		return session.Blank, err
	}

	if err = uc.sessionRepo.Add(ctx, s); err != nil {
		return session.Blank, ErrUnableToCreateSession
	}

	uc.metrics.SessionsCreated.Inc()

	return s, nil
}
