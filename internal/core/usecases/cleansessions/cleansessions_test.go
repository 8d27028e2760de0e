package cleansessions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/entities/filterset"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/core/usecases/cleansessions"
)

type MockSessionRepository struct {
	mock.Mock
	repositories.SessionRepository
}

func (m *MockSessionRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Get(0).(int), args.Error(1) // nolint: forcetypeassert
}

func (m *MockSessionRepository) Clear(ctx context.Context, fs filterset.SessionFilterSet) ([]uuid.UUID, error) {
	args := m.Called(ctx, fs)
	return args.Get(0).([]uuid.UUID), args.Error(1) // nolint: forcetypeassert
}

type MockEventBus struct {
	mock.Mock
	repositories.EventBus
}

func (m *MockEventBus) Publish(ctx context.Context, id uuid.UUID, events ...event.Event) error {
	args := m.Called(ctx, id, events)
	return args.Error(0)
}

func TestCleanSessionsUseCase_OK(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	until := time.Now().Add(-time.Hour)
	fs := filterset.NewSessionFilterSet().UpdatedBefore(until)
	removed := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	repo := new(MockSessionRepository)
	repo.On("Count", ctx).Return(5, nil).Once()
	repo.On("Clear", ctx, fs).Return(removed, nil).Once()
	repo.On("Count", ctx).Return(2, nil).Once()

	bus := new(MockEventBus)
	for _, id := range removed {
		bus.On("Publish", ctx, id, []event.Event{event.NewRemoved(id)}).Return(nil).Once()
	}

	uc := cleansessions.New(repo, bus, &logger)
	resp, err := uc.Execute(ctx, until)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Count)
	repo.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestCleanSessionsUseCase_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	id := uuid.New()

	repo := new(MockSessionRepository)
	repo.On("Count", ctx).Return(1, nil).Once()
	repo.On("Clear", ctx, mock.Anything).Return([]uuid.UUID{id}, nil).Once()
	repo.On("Count", ctx).Return(0, nil).Once()

	bus := new(MockEventBus)
	bus.On("Publish", ctx, id, mock.Anything).Return(errors.New("connection refused")).Once()

	uc := cleansessions.New(repo, bus, &logger)
	resp, err := uc.Execute(ctx, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Count)
	bus.AssertExpectations(t)
}

func TestCleanSessionsUseCase_NothingToClean(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	repo := new(MockSessionRepository)
	repo.On("Count", ctx).Return(2, nil).Twice()
	repo.On("Clear", ctx, mock.Anything).Return([]uuid.UUID{}, nil).Once()

	bus := new(MockEventBus)

	uc := cleansessions.New(repo, bus, &logger)
	resp, err := uc.Execute(ctx, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Count)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCleanSessionsUseCase_ClearFails(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	until := time.Now()

	repo := new(MockSessionRepository)
	repo.On("Count", ctx).Return(5, nil).Once()
	repo.On("Clear", ctx, mock.Anything).Return([]uuid.UUID(nil), errors.New("error")).Once()

	bus := new(MockEventBus)

	uc := cleansessions.New(repo, bus, &logger)
	resp, err := uc.Execute(ctx, until)

	assert.Error(t, err)
	assert.Equal(t, cleansessions.NoResponse, resp)
	repo.AssertNumberOfCalls(t, "Count", 1)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCleanSessionsUseCase_CountFails(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	repo := new(MockSessionRepository)
	repo.On("Count", ctx).Return(0, errors.New("error")).Once()

	uc := cleansessions.New(repo, new(MockEventBus), &logger)
	_, err := uc.Execute(ctx, time.Now())

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}
