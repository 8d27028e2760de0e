package sessionfactory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/enigma/rotor"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
	"github.com/sergeii/enigma/pkg/random"
	"github.com/sergeii/enigma/pkg/slice"
)

type BuildParams struct {
	ID       uuid.UUID
	Name     string
	Settings enigma.Settings
	Time     time.Time
}

type BuildOption func(*BuildParams)

func WithID(id uuid.UUID) BuildOption {
	return func(p *BuildParams) {
		p.ID = id
	}
}

func WithName(name string) BuildOption {
	return func(p *BuildParams) {
		p.Name = name
	}
}

func WithSettings(s enigma.Settings) BuildOption {
	return func(p *BuildParams) {
		p.Settings = s
	}
}

func WithPositions(positions ...int) BuildOption {
	return func(p *BuildParams) {
		for slot, pos := range positions {
			p.Settings.Rotors[slot].Position = pos
		}
	}
}

func WithRandomSettings() BuildOption {
	return func(p *BuildParams) {
		for slot := range rotor.Slots {
			p.Settings.Rotors[slot].Model = slice.RandomChoice(wiring.RotorModels)
			p.Settings.Rotors[slot].Position = random.RandInt(rotor.MinPosition, rotor.MaxPosition+1)
		}
		p.Settings.Reflector = slice.RandomChoice(wiring.ReflectorModels)
	}
}

func WithTime(t time.Time) BuildOption {
	return func(p *BuildParams) {
		p.Time = t
	}
}

func Build(opts ...BuildOption) session.Session {
	params := BuildParams{
		Name:     "session " + random.RandLetters(6),
		Settings: enigma.DefaultSettings(),
		Time:     time.Now(),
	}

	for _, opt := range opts {
		opt(&params)
	}

	s := session.MustNew(params.Name, params.Settings, params.Time)
	if params.ID != uuid.Nil {
		s.ID = params.ID
	}
	return s
}

func Create(
	ctx context.Context,
	repo repositories.SessionRepository,
	opts ...BuildOption,
) session.Session {
	s := Build(opts...)
	if err := repo.Add(ctx, s); err != nil {
		panic(err)
	}
	return s
}
