package gettable

import (
	"context"
	"errors"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/enigma/alphabet"
)

const DefaultCacheSize = 4096

var (
	ErrSessionNotFound        = errors.New("session not found")
	ErrUnableToObtainSession  = errors.New("unable to obtain session from repository")
	ErrUnableToRestoreMachine = errors.New("unable to restore session machine")
)

// Table maps every key to the lamp it lights
type Table [alphabet.Size]alphabet.Letter

type Response struct {
	Session session.Session
	Table   Table
}

var NoResponse = Response{}

type Opts struct {
	CacheSize int
}

type UseCase struct {
	sessionRepo repositories.SessionRepository
	cache       *lru.Cache[string, Table]
	metrics     *metrics.Collector
}

func New(
	sessionRepo repositories.SessionRepository,
	metrics *metrics.Collector,
) (UseCase, error) {
	return NewWithOpts(sessionRepo, metrics, Opts{CacheSize: DefaultCacheSize})
}

func NewWithOpts(
	sessionRepo repositories.SessionRepository,
	metrics *metrics.Collector,
	opts Opts,
) (UseCase, error) {
	cache, err := lru.New[string, Table](opts.CacheSize)
	if err != nil {
		return UseCase{}, err
	}
	return UseCase{
		sessionRepo: sessionRepo,
		cache:       cache,
		metrics:     metrics,
	}, nil
}

// Execute computes the table for the current state of the session machine.
// Tables depend on the machine settings only, so they are shared between sessions set up alike
func (uc UseCase) Execute(ctx context.Context, id uuid.UUID) (Response, error) {
	s, err := uc.sessionRepo.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return NoResponse, ErrSessionNotFound
		default:
			return NoResponse, ErrUnableToObtainSession
		}
	}

	table, err := uc.lookup(s.Settings)
	if err != nil {
		return NoResponse, err
	}

	return Response{
		Session: s,
		Table:   table,
	}, nil
}

func (uc UseCase) lookup(settings enigma.Settings) (Table, error) {
	key := settings.Key()
	if table, ok := uc.cache.Get(key); ok {
		uc.metrics.TableCacheLookups.WithLabelValues("hit").Inc()
		return table, nil
	}
	uc.metrics.TableCacheLookups.WithLabelValues("miss").Inc()

	m, err := enigma.NewFromSettings(settings)
	if err != nil {
		return Table{}, errors.Join(ErrUnableToRestoreMachine, err)
	}
	table := Table(m.Table())
	uc.cache.Add(key, table)

	return table, nil
}

func (t Table) String() string {
	out := make([]byte, 0, alphabet.Size)
	for _, l := range t {
		out = append(out, byte(l))
	}
	return string(out)
}
