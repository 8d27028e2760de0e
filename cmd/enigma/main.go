package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/components/api"
	"github.com/sergeii/enigma/cmd/enigma/components/cleaner"
	"github.com/sergeii/enigma/cmd/enigma/components/encode"
	"github.com/sergeii/enigma/cmd/enigma/components/exporter"
	"github.com/sergeii/enigma/cmd/enigma/components/observer"
	"github.com/sergeii/enigma/cmd/enigma/components/typing"
	"github.com/sergeii/enigma/cmd/enigma/logging"
	"github.com/sergeii/enigma/cmd/enigma/persistence"
	"github.com/sergeii/enigma/internal/persistence/redis/repositories/sessions"
)

func main() {
	// a missing .env is fine, the environment and the flags still apply
	_ = godotenv.Load()

	cli := commander.CLI{}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
		&cleaner.CLI{},
		&observer.CLI{},
	}
	cli.Plugins = kong.Plugins{
		&encode.CLI{},
		&typing.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("enigma"),
		kong.Description("Enigma M3 cipher machine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			RedisURL: cli.Globals.RedisURL,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Supply(&sessions.LockOpts{
			LeaseDuration: cli.Globals.SessionLockLease,
			RetryBackoff:  cli.Globals.SessionLockBackoff,
			MaxAttempts:   cli.Globals.SessionLockAttempts,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder, commander.StdStreams()); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
