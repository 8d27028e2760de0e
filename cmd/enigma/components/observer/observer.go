package observer

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/components/periodic"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/metrics/observers/sessionobserver"
)

type Config struct {
	ObserveInterval time.Duration
}

type Component struct{}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) *Component {
	periodic.Schedule(lc, clock, logger, periodic.Job{
		Name:     "observer",
		Interval: cfg.ObserveInterval,
		Run:      collector.Observe,
	})
	return &Component{}
}

type command struct {
	MetricObserveInterval time.Duration `default:"5s" help:"Sets how often session metrics are collected"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				ObserveInterval: c.MetricObserveInterval,
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
	Observer command `cmd:"" help:"Start observer"`
}

var Module = fx.Module("observer",
	fx.Invoke(sessionobserver.New),
	fx.Provide(New),
)
