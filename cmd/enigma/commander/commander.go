package commander

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sergeii/enigma/cmd/enigma/build"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error"     env:"ENIGMA_LOG_LEVEL"  help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stdout,stderr,json" env:"ENIGMA_LOG_OUTPUT" help:"Specifies the format for log output"`             // nolint:lll

	RedisURL string `default:"redis://localhost:6379" env:"ENIGMA_REDIS_URL" help:"Defines the Redis URL connection"`

	ExporterHTTPListenAddress   string        `default:":9000" env:"ENIGMA_EXPORTER_LISTEN_ADDRESS" help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`                                                       // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response before timing out"`                                                            // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"   help:"The amount of time the server will wait gracefully closing connections before exiting"`                                      // nolint:lll

	SessionLockLease    time.Duration `default:"1s"   help:"Sets how long a session stays locked by a single encode or configure request"` // nolint:lll
	SessionLockBackoff  time.Duration `default:"50ms" help:"Sets the pause between attempts to lock a busy session"`                       // nolint:lll
	SessionLockAttempts int           `default:"5"    help:"Specifies how many times a busy session is tried before giving up"`            // nolint:lll
}

// Streams are the terminal the one-shot commands talk to
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func StdStreams() *Streams {
	return &Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
	Run     RunCmd     `cmd:"" help:"Run a long running service component"`

	kong.Plugins
}
