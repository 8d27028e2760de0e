// Package periodic runs a background job on a clockwork ticker for the lifetime of an fx app
package periodic

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context)
}

// Schedule registers the job with the app lifecycle.
// Stopping the app cancels the context of a round in progress and waits for it to return
func Schedule(lc fx.Lifecycle, clock clockwork.Clock, logger *zerolog.Logger, job Job) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go loop(ctx, stopped, clock, logger, job) // nolint: contextcheck
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-stopped:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info().Str("job", job.Name).Msg("Stopped")
			return nil
		},
	})
}

func loop(
	ctx context.Context,
	stopped chan struct{},
	clock clockwork.Clock,
	logger *zerolog.Logger,
	job Job,
) {
	defer close(stopped)

	ticker := clock.NewTicker(job.Interval)
	defer ticker.Stop()

	logger.Info().Str("job", job.Name).Dur("interval", job.Interval).Msg("Starting")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			job.Run(ctx)
		}
	}
}
