package testutils

import (
	"net/http/httptest"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/components/api"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/testutils/testapp"
)

type TestServerDeps struct {
	Sessions  repositories.SessionRepository
	Events    repositories.EventBus
	Collector *metrics.Collector
	Redis     *miniredis.Miniredis
}

func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, func()) {
	gin.SetMode(gin.ReleaseMode) // prevent gin from overwriting middlewares

	var router *gin.Engine
	fxopts := []fx.Option{
		fx.Supply(api.Config{
			HTTPListenAddr: "localhost:0",
		}),
		fx.Provide(testapp.ProvidePersistence),
		application.Module,
		api.Module,
		fx.Provide(testapp.NoLogging),
		fx.NopLogger,
		fx.Populate(&router),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, func() {
		defer app.RequireStop()
		defer ts.Close()
	}
}

func PrepareTestServerWithDeps(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, TestServerDeps, func()) {
	var deps TestServerDeps
	extra = append(
		extra,
		fx.Populate(&deps.Sessions, &deps.Events, &deps.Collector, &deps.Redis),
	)
	ts, cleanup := PrepareTestServer(tb, extra...)
	return ts, deps, cleanup
}

// WithFakeClock replaces the real clock of the application with c
func WithFakeClock(c *clockwork.FakeClock) fx.Option {
	return fx.Decorate(func(clockwork.Clock) clockwork.Clock {
		return c
	})
}
