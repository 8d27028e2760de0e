package persistence_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/enigma/cmd/enigma/persistence"
)

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestProvide_OK(t *testing.T) {
	mr := miniredis.RunT(t)

	var client *redis.Client
	app := fxtest.New(
		t,
		fx.Supply(persistence.Config{RedisURL: "redis://" + mr.Addr() + "/0"}),
		fx.Provide(nopLogger),
		fx.Provide(persistence.Provide),
		fx.Populate(&client),
		fx.NopLogger,
	)
	app.RequireStart()

	require.NoError(t, client.Set(context.TODO(), "foo", "bar", 0).Err())
	got, err := mr.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, "bar", got)

	app.RequireStop()
	assert.ErrorIs(t, client.Ping(context.TODO()).Err(), redis.ErrClosed)
}

func TestProvide_InvalidURL(t *testing.T) {
	_, err := persistence.Provide(fxtest.NewLifecycle(t), persistence.Config{RedisURL: "http://localhost"}, nopLogger())
	assert.Error(t, err)
}

func TestProvide_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	app := fx.New(
		fx.Supply(persistence.Config{RedisURL: "redis://" + addr}),
		fx.Provide(nopLogger),
		fx.Provide(persistence.Provide),
		fx.Invoke(func(*redis.Client) {}),
		fx.NopLogger,
	)
	assert.Error(t, app.Start(context.TODO()))
}
