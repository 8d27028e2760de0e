package sessioncleaner_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/cleanup"
	"github.com/sergeii/enigma/internal/cleanup/cleaners/sessioncleaner"
	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/usecases/cleansessions"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/persistence/redis/eventbus"
	"github.com/sergeii/enigma/internal/persistence/redis/redislock"
	"github.com/sergeii/enigma/internal/persistence/redis/repositories/sessions"
	"github.com/sergeii/enigma/internal/testutils/factories/sessionfactory"
	"github.com/sergeii/enigma/internal/testutils/testredis"
)

func TestSessionCleaner_Clean_OK(t *testing.T) {
	ctx := context.TODO()
	client := testredis.MakeClient(t)

	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	logger := zerolog.Nop()
	collector := metrics.New()
	manager := cleanup.NewManager()

	repo := sessions.New(client, redislock.NewManager(client, &logger), clock)

	old := sessionfactory.Create(ctx, repo, sessionfactory.WithTime(clock.Now().Add(-3*time.Hour)))
	older := sessionfactory.Create(ctx, repo, sessionfactory.WithTime(clock.Now().Add(-25*time.Hour)))
	fresh := sessionfactory.Create(ctx, repo, sessionfactory.WithTime(clock.Now().Add(-59*time.Minute)))

	cleaner := sessioncleaner.New(
		manager,
		sessioncleaner.Opts{Retention: time.Hour},
		cleansessions.New(repo, eventbus.New(client, &logger), &logger),
		clock,
		collector,
		&logger,
	)
	cleaner.Clean(ctx)

	_, err := repo.Get(ctx, old.ID)
	assert.Error(t, err)
	_, err = repo.Get(ctx, older.ID)
	assert.Error(t, err)
	got, err := repo.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, got.ID)

	assert.Equal(t, float64(2), testutil.ToFloat64(collector.CleanerRemovals.WithLabelValues("sessions")))
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.CleanerErrors.WithLabelValues("sessions")))
}

func TestSessionCleaner_Clean_NothingToClean(t *testing.T) {
	ctx := context.TODO()
	client := testredis.MakeClient(t)

	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()
	collector := metrics.New()

	repo := sessions.New(client, redislock.NewManager(client, &logger), clock)
	sessionfactory.Create(ctx, repo, sessionfactory.WithTime(clock.Now()))

	cleaner := sessioncleaner.New(
		cleanup.NewManager(),
		sessioncleaner.Opts{Retention: time.Hour},
		cleansessions.New(repo, eventbus.New(client, &logger), &logger),
		clock,
		collector,
		&logger,
	)
	cleaner.Clean(ctx)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.CleanerRemovals.WithLabelValues("sessions")))
}

func TestSessionCleaner_Clean_RepoFailure(t *testing.T) {
	ctx := context.TODO()
	mr := miniredis.RunT(t)
	client := testredis.MakeClientFromMini(t, mr)
	mr.Close()

	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()
	collector := metrics.New()

	repo := sessions.New(client, redislock.NewManager(client, &logger), clock)

	cleaner := sessioncleaner.New(
		cleanup.NewManager(),
		sessioncleaner.Opts{Retention: time.Hour},
		cleansessions.New(repo, eventbus.New(client, &logger), &logger),
		clock,
		collector,
		&logger,
	)
	cleaner.Clean(ctx)

	assert.Equal(t, float64(1), testutil.ToFloat64(collector.CleanerErrors.WithLabelValues("sessions")))
}

func TestSessionCleaner_Clean_NotifiesWatchers(t *testing.T) {
	ctx := context.TODO()
	client := testredis.MakeClient(t)

	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()
	bus := eventbus.New(client, &logger)

	repo := sessions.New(client, redislock.NewManager(client, &logger), clock)
	idle := sessionfactory.Create(ctx, repo, sessionfactory.WithTime(clock.Now().Add(-2*time.Hour)))

	stream, err := bus.Subscribe(ctx, idle.ID)
	require.NoError(t, err)
	defer stream.Close() // nolint: errcheck

	cleaner := sessioncleaner.New(
		cleanup.NewManager(),
		sessioncleaner.Opts{Retention: time.Hour},
		cleansessions.New(repo, bus, &logger),
		clock,
		metrics.New(),
		&logger,
	)
	cleaner.Clean(ctx)

	select {
	case e := <-stream.Events():
		assert.Equal(t, event.NewRemoved(idle.ID), e)
	case <-time.After(time.Second):
		require.FailNow(t, "no removal event received")
	}
}
