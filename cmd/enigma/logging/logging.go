package logging

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/sergeii/enigma/cmd/enigma/build"
	"github.com/sergeii/enigma/pkg/logutils"
)

var (
	ErrInvalidLogOutput = errors.New("logging: unknown output format")
	ErrInvalidLogLevel  = errors.New("logging: unknown level")
)

type Config struct {
	LogOutput string
	LogLevel  string
}

type Result struct {
	fx.Out

	Logger   *zerolog.Logger
	LogLevel zerolog.Level
}

// Provide builds the app logger.
// Console output goes to stderr unless asked otherwise, stdout belongs to the cipher text
func Provide(cfg Config) (Result, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	zerolog.DurationFieldUnit = time.Second
	zerolog.CallerMarshalFunc = logutils.ShortCallerFormatter

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return Result{}, ErrInvalidLogLevel
	}
	zerolog.SetGlobalLevel(lvl)

	output, err := writerFor(cfg.LogOutput)
	if err != nil {
		return Result{}, err
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Str("version", build.Version).
		Logger()

	result := Result{
		Logger:   &logger,
		LogLevel: lvl,
	}
	return result, nil
}

func writerFor(output string) (io.Writer, error) {
	switch output {
	case "console", "":
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, nil
	case "stdout":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "stderr":
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "json":
		return os.Stderr, nil
	default:
		return nil, ErrInvalidLogOutput
	}
}

// NoGlobal silences the global logger, everything logs through the provided one
func NoGlobal() {
	log.Logger = zerolog.Nop()
}

// FxLogger shows the fx container events at debug level only
func FxLogger(logger *zerolog.Logger, lvl zerolog.Level) fxevent.Logger {
	switch lvl { // nolint: exhaustive
	case zerolog.DebugLevel:
		return &fxevent.ConsoleLogger{
			W: logger,
		}
	default:
		return fxevent.NopLogger
	}
}
