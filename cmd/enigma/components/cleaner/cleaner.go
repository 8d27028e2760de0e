package cleaner

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/components/periodic"
	"github.com/sergeii/enigma/internal/cleanup"
	"github.com/sergeii/enigma/internal/cleanup/cleaners/sessioncleaner"
)

type Config struct {
	CleanRetention time.Duration
	CleanInterval  time.Duration
}

type Component struct{}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	manager *cleanup.Manager,
	logger *zerolog.Logger,
) *Component {
	logger.Debug().Dur("retention", cfg.CleanRetention).Msg("Idle sessions retention")
	periodic.Schedule(lc, clock, logger, periodic.Job{
		Name:     "cleaner",
		Interval: cfg.CleanInterval,
		Run:      manager.Clean,
	})
	return &Component{}
}

func provideCleanerOpts(cfg Config) sessioncleaner.Opts {
	return sessioncleaner.Opts{
		Retention: cfg.CleanRetention,
	}
}

type command struct {
	CleanRetention time.Duration `default:"168h" help:"Sets how long an idle session is kept"`
	CleanInterval  time.Duration `default:"10m"  help:"Sets how often idle sessions are cleaned up"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				CleanRetention: c.CleanRetention,
				CleanInterval:  c.CleanInterval,
			}),
			Module,
			fx.Invoke(func(_ *Component) {}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Cleaner command `cmd:"" help:"Start cleaner"`
}

var Module = fx.Module("cleaner",
	fx.Provide(cleanup.NewManager),
	fx.Provide(fx.Private, provideCleanerOpts),
	fx.Invoke(sessioncleaner.New),
	fx.Provide(New),
)
