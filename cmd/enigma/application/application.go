package application

import (
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/components/exporter"
	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/cmd/enigma/logging"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/persistence/redis/eventbus"
	"github.com/sergeii/enigma/internal/persistence/redis/redislock"
	"github.com/sergeii/enigma/internal/persistence/redis/repositories/sessions"
	"github.com/sergeii/enigma/internal/validation"
)

type Repositories struct {
	fx.Out

	Sessions repositories.SessionRepository
	Events   repositories.EventBus
}

func provideRepositories(
	sessionRepo *sessions.Repository,
	eventBus *eventbus.Bus,
) Repositories {
	return Repositories{
		Sessions: sessionRepo,
		Events:   eventBus,
	}
}

type sessionRepoParams struct {
	fx.In

	Client   *redis.Client
	Locker   *redislock.Manager
	Clock    clockwork.Clock
	LockOpts *sessions.LockOpts `optional:"true"`
}

func provideSessionRepository(p sessionRepoParams) *sessions.Repository {
	if p.LockOpts == nil {
		return sessions.New(p.Client, p.Locker, p.Clock)
	}
	return sessions.NewWithLockOpts(p.Client, p.Locker, p.Clock, *p.LockOpts)
}

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(redislock.NewManager),
	fx.Provide(provideSessionRepository, eventbus.New),
	fx.Provide(provideRepositories),
	fx.Provide(metrics.New),
	container.Module,
)
