package listsessions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/core/usecases/listsessions"
	"github.com/sergeii/enigma/internal/testutils/factories/sessionfactory"
)

type MockSessionRepository struct {
	mock.Mock
	repositories.SessionRepository
}

func (m *MockSessionRepository) List(ctx context.Context) ([]session.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).([]session.Session), args.Error(1) // nolint: forcetypeassert
}

func TestListSessionsUseCase_OK(t *testing.T) {
	s1 := sessionfactory.Build(sessionfactory.WithName("first"))
	s2 := sessionfactory.Build(sessionfactory.WithName("second"))
	s3 := sessionfactory.Build(sessionfactory.WithName("third"))

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"no limit", 0, []string{"third", "second", "first"}},
		{"limit below total", 2, []string{"third", "second"}},
		{"limit above total", 10, []string{"third", "second", "first"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()

			repo := new(MockSessionRepository)
			repo.On("List", ctx).Return([]session.Session{s3, s2, s1}, nil)

			uc := listsessions.New(repo)
			got, err := uc.Execute(ctx, listsessions.Request{Limit: tt.limit})
			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, s := range got {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
			repo.AssertExpectations(t)
		})
	}
}

func TestListSessionsUseCase_Empty(t *testing.T) {
	ctx := context.TODO()

	repo := new(MockSessionRepository)
	repo.On("List", ctx).Return([]session.Session{}, nil)

	uc := listsessions.New(repo)
	got, err := uc.Execute(ctx, listsessions.Request{})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListSessionsUseCase_RepoError(t *testing.T) {
	ctx := context.TODO()

	repo := new(MockSessionRepository)
	repo.On("List", ctx).Return([]session.Session(nil), errors.New("connection reset"))

	uc := listsessions.New(repo)
	_, err := uc.Execute(ctx, listsessions.Request{})

	assert.ErrorIs(t, err, listsessions.ErrUnableToObtainSessions)
	repo.AssertExpectations(t)
}
