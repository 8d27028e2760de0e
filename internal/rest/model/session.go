package model

import (
	"time"

	"github.com/gosimple/slug"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/usecases/encodetext"
	"github.com/sergeii/enigma/internal/core/usecases/gettable"
	"github.com/sergeii/enigma/internal/keysheet"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/enigma/alphabet"
)

type Rotor struct {
	Model    string `example:"III" json:"model"              validate:"required,rotormodel"`
	Position int    `example:"5"   json:"position,omitempty" validate:"omitempty,min=1,max=26"`
	Turnover string `example:"e"   json:"turnover,omitempty" validate:"omitempty,letter"`
}

// Settings describes a machine setting the way an operator would write it down.
// Omitted fields fall back to the defaults of a freshly built machine
type Settings struct {
	Rotors    []Rotor           `json:"rotors,omitempty"    validate:"omitempty,len=3,dive"`
	Reflector string            `json:"reflector,omitempty" validate:"omitempty,reflectormodel"                 example:"B"` // nolint:lll
	Plugs     map[string]string `json:"plugs,omitempty"     validate:"omitempty,dive,keys,plugid,endkeys,letter"`
}

func (s Settings) ToDomain() (enigma.Settings, error) {
	sheet := keysheet.Sheet{
		Reflector: s.Reflector,
		Plugs:     s.Plugs,
	}
	for _, r := range s.Rotors {
		sheet.Rotors = append(sheet.Rotors, keysheet.Rotor(r))
	}
	return sheet.Settings()
}

func NewSettingsFromDomain(s enigma.Settings) Settings {
	sheet := keysheet.FromSettings("", s)
	settings := Settings{
		Rotors:    make([]Rotor, 0, len(sheet.Rotors)),
		Reflector: sheet.Reflector,
		Plugs:     sheet.Plugs,
	}
	for _, r := range sheet.Rotors {
		settings.Rotors = append(settings.Rotors, Rotor(r))
	}
	return settings
}

type NewSession struct {
	Name     string    `example:"morning traffic" json:"name"     validate:"required,max=64"`
	Settings *Settings `json:"settings"           validate:"omitempty"`
}

type UpdateSession struct {
	Name     *string   `example:"evening traffic" json:"name"     validate:"omitempty,min=1,max=64"`
	Settings *Settings `json:"settings"           validate:"omitempty"`
}

type Session struct {
	ID        string    `example:"4a1bd3c1-7e36-4c36-b6c5-4f0c2e1d9a4e" json:"id"`
	Name      string    `example:"Morning traffic"                      json:"name"`
	NameSlug  string    `example:"morning-traffic"                      json:"name_slug"`
	Key       string    `example:"III.II.I/05.10.20/evq/B/azbycx"       json:"key"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSessionFromDomain(s session.Session) Session {
	return Session{
		ID:        s.ID.String(),
		Name:      s.Name,
		NameSlug:  slug.Make(s.Name),
		Key:       s.Settings.Key(),
		Settings:  NewSettingsFromDomain(s.Settings),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type EncodeRequest struct {
	Text string `example:"Attack at dawn" json:"text" validate:"required,max=65536"`
	// Group splits the output into blocks of that many letters, zero keeps it in one piece
	Group int `example:"5" json:"group" validate:"min=0,max=64"`
}

type Encoded struct {
	Input   string  `example:"attackatdawn"   json:"input"`
	Output  string  `example:"tixuj xbplx cb" json:"output"`
	Session Session `json:"session"`
}

func NewEncodedFromDomain(resp encodetext.Response, output string) Encoded {
	return Encoded{
		Input:   resp.Input,
		Output:  output,
		Session: NewSessionFromDomain(resp.Session),
	}
}

type Table struct {
	SessionID string            `json:"session_id"`
	Key       string            `example:"I.I.I/01.01.01/qqq/A/......" json:"key"`
	Lamps     string            `example:"sngjqucwvdzpobmlexayfihrtk"  json:"lamps"`
	Mapping   map[string]string `json:"mapping"`
}

func NewTableFromDomain(resp gettable.Response) Table {
	mapping := make(map[string]string, alphabet.Size)
	for i, l := range resp.Table {
		mapping[alphabet.FromIndex(i).String()] = l.String()
	}
	return Table{
		SessionID: resp.Session.ID.String(),
		Key:       resp.Session.Settings.Key(),
		Lamps:     resp.Table.String(),
		Mapping:   mapping,
	}
}

type Event struct {
	Kind   string `example:"letter_encoded" json:"kind"`
	Letter string `example:"s"              json:"letter,omitempty"`
	Slot   *int   `json:"slot,omitempty"`
}

func NewEventFromDomain(e event.Event) Event {
	return Event{
		Kind:   string(e.Kind),
		Letter: e.Letter.String(),
		Slot:   e.Slot,
	}
}
