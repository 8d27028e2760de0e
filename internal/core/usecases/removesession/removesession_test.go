package removesession_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/core/usecases/removesession"
	"github.com/sergeii/enigma/internal/metrics"
)

type MockSessionRepository struct {
	mock.Mock
	repositories.SessionRepository
}

func (m *MockSessionRepository) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventBus struct {
	mock.Mock
	repositories.EventBus
}

func (m *MockEventBus) Publish(ctx context.Context, id uuid.UUID, events ...event.Event) error {
	args := m.Called(ctx, id, events)
	return args.Error(0)
}

func TestRemoveSessionUseCase_OK(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()
	collector := metrics.New()
	id := uuid.New()

	repo := new(MockSessionRepository)
	repo.On("Remove", ctx, id).Return(nil)
	bus := new(MockEventBus)
	bus.On("Publish", ctx, id, []event.Event{event.NewRemoved(id)}).Return(nil)

	uc := removesession.New(repo, bus, collector, &logger)
	err := uc.Execute(ctx, id)

	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.SessionsRemoved))
	repo.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestRemoveSessionUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"not found", repositories.ErrSessionNotFound, removesession.ErrSessionNotFound},
		{"other error", errors.New("READONLY replica"), removesession.ErrUnableToRemoveSession},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			logger := zerolog.Nop()
			collector := metrics.New()
			id := uuid.New()

			repo := new(MockSessionRepository)
			repo.On("Remove", ctx, id).Return(tt.repoErr)
			bus := new(MockEventBus)

			uc := removesession.New(repo, bus, collector, &logger)
			err := uc.Execute(ctx, id)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, float64(0), testutil.ToFloat64(collector.SessionsRemoved))
			bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRemoveSessionUseCase_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()
	id := uuid.New()

	repo := new(MockSessionRepository)
	repo.On("Remove", ctx, id).Return(nil)
	bus := new(MockEventBus)
	bus.On("Publish", ctx, id, mock.Anything).Return(errors.New("closed"))

	uc := removesession.New(repo, bus, metrics.New(), &logger)
	assert.NoError(t, uc.Execute(ctx, id))
}
