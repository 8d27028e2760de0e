package encodetext

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/textprep"
)

var (
	ErrNothingToEncode        = errors.New("text contains no letters to encode")
	ErrSessionNotFound        = errors.New("session not found")
	ErrSessionBusy            = errors.New("session is busy")
	ErrUnableToEncodeText     = errors.New("unable to encode text")
	ErrUnableToRestoreMachine = errors.New("unable to restore session machine")
)

type Request struct {
	Text string
}

type Response struct {
	// Input is the text as it was typed on the keyboard, i.e. with everything but letters removed
	Input   string
	Output  string
	Session session.Session
}

var NoResponse = Response{}

type UseCase struct {
	sessionRepo repositories.SessionRepository
	eventBus    repositories.EventBus
	clock       clockwork.Clock
	metrics     *metrics.Collector
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	eventBus repositories.EventBus,
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		eventBus:    eventBus,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, id uuid.UUID, req Request) (Response, error) {
	started := uc.clock.Now()

	input := textprep.Letters(req.Text)
	if input == "" {
		uc.metrics.EncodeErrors.WithLabelValues("empty").Inc()
		return NoResponse, ErrNothingToEncode
	}

	var output string
	var events []event.Event

	updated, err := uc.sessionRepo.Update(ctx, id, func(s *session.Session) error {
		// the callback may be retried, start from scratch every time
		events = events[:0]
		m, err := s.Machine()
		if err != nil {
			return errors.Join(ErrUnableToRestoreMachine, err)
		}
		m.OnLetterEncoded(func(l alphabet.Letter) {
			events = append(events, event.NewLetterEncoded(id, l))
		})
		m.OnRotorAdvanced(func(slot int) {
			events = append(events, event.NewRotorAdvanced(id, slot))
		})
		if output, err = m.EncodeText(input); err != nil {
			return err
		}
		s.Settings = m.Settings()
		return nil
	})
	if err != nil {
		return NoResponse, uc.handleError(id, err)
	}

	uc.observe(events, started)

	if pubErr := uc.eventBus.Publish(ctx, id, events...); pubErr != nil {
		uc.logger.Warn().
			Err(pubErr).
			Stringer("session", id).Int("events", len(events)).
			Msg("Failed to publish machine events")
	}

	return Response{
		Input:   input,
		Output:  output,
		Session: updated,
	}, nil
}

func (uc UseCase) handleError(id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, repositories.ErrSessionNotFound):
		uc.metrics.EncodeErrors.WithLabelValues("not_found").Inc()
		return ErrSessionNotFound
	case errors.Is(err, repositories.ErrSessionBusy):
		uc.metrics.EncodeErrors.WithLabelValues("busy").Inc()
		return ErrSessionBusy
	default:
		uc.metrics.EncodeErrors.WithLabelValues("internal").Inc()
		uc.logger.Error().Err(err).Stringer("session", id).Msg("Failed to encode text")
		return ErrUnableToEncodeText
	}
}

func (uc UseCase) observe(events []event.Event, started time.Time) {
	for _, e := range events {
		switch e.Kind { // nolint: exhaustive
		case event.LetterEncoded:
			uc.metrics.LettersEncoded.Inc()
		case event.RotorAdvanced:
			uc.metrics.RotorAdvances.WithLabelValues(strconv.Itoa(*e.Slot)).Inc()
		}
	}
	uc.metrics.EncodeDurations.Observe(uc.clock.Since(started).Seconds())
}
