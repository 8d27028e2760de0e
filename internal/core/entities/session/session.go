package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sergeii/enigma/pkg/enigma"
)

const MaxNameLength = 64

var ErrInvalidName = errors.New("invalid session name")

// Session is a named machine whose state survives between requests
type Session struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Settings  enigma.Settings `json:"settings"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

var Blank Session // nolint: gochecknoglobals

func New(name string, settings enigma.Settings, now time.Time) (Session, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Blank, err
	}
	if err = settings.Validate(); err != nil {
		return Blank, err
	}
	now = now.UTC()
	return Session{
		ID:        uuid.New(),
		Name:      name,
		Settings:  settings,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func MustNew(name string, settings enigma.Settings, now time.Time) Session {
	s, err := New(name, settings, now)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Session) Rename(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	s.Name = name
	return nil
}

// Machine restores the machine in the state the session was last saved in
func (s Session) Machine() (*enigma.Machine, error) {
	return enigma.NewFromSettings(s.Settings)
}

func (s Session) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.ID)
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}
