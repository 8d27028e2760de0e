// Package keysheet reads and writes machine settings in a YAML document
// modelled after the daily key lists handed out to operators:
//
//	name: day 17
//	rotors: # rightmost first
//	  - {model: III, position: 5, turnover: e}
//	  - {model: II, position: 10, turnover: v}
//	  - {model: I, position: 20, turnover: q}
//	reflector: B
//	plugs: {RedA: a, RedB: z}
package keysheet

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sergeii/enigma/internal/validation"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/plugboard"
	"github.com/sergeii/enigma/pkg/enigma/rotor"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
)

var (
	ErrInvalidKeysheet = errors.New("invalid keysheet")
	ErrDuplicatePlug   = errors.New("plug is given more than once")
)

type Rotor struct {
	Model    string `validate:"required,rotormodel"       yaml:"model"`
	Position int    `validate:"omitempty,min=1,max=26"    yaml:"position,omitempty"`
	Turnover string `validate:"omitempty,letter"          yaml:"turnover,omitempty"`
}

type Sheet struct {
	Name      string            `validate:"max=64"                                      yaml:"name,omitempty"`
	Rotors    []Rotor           `validate:"omitempty,len=3,dive"                        yaml:"rotors,omitempty"`
	Reflector string            `validate:"omitempty,reflectormodel"                    yaml:"reflector,omitempty"`
	Plugs     map[string]string `validate:"omitempty,dive,keys,plugid,endkeys,letter"  yaml:"plugs,omitempty"`
}

var newValidator = sync.OnceValues(validation.New)

func Load(path string) (Sheet, enigma.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, enigma.Settings{}, fmt.Errorf("keysheet: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes the document and turns it into machine settings.
// Omitted fields keep the defaults of a freshly built machine
func Parse(data []byte) (Sheet, enigma.Settings, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return Sheet{}, enigma.Settings{}, fmt.Errorf("%w: %w", ErrInvalidKeysheet, err)
	}
	settings, err := sheet.Settings()
	if err != nil {
		return Sheet{}, enigma.Settings{}, err
	}
	return sheet, settings, nil
}

func (sh Sheet) Settings() (enigma.Settings, error) {
	validate, err := newValidator()
	if err != nil {
		return enigma.Settings{}, err
	}
	if err = validate.Struct(sh); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return enigma.Settings{}, fmt.Errorf("%w: field %s fails %q", ErrInvalidKeysheet, verrs[0].Namespace(), verrs[0].Tag())
		}
		return enigma.Settings{}, fmt.Errorf("%w: %w", ErrInvalidKeysheet, err)
	}

	settings := enigma.DefaultSettings()
	for slot, r := range sh.Rotors {
		rs := &settings.Rotors[slot]
		if rs.Model, err = wiring.ParseRotorModel(r.Model); err != nil {
			return enigma.Settings{}, fmt.Errorf("%w: %w", ErrInvalidKeysheet, err)
		}
		if r.Position != 0 {
			rs.Position = r.Position
		}
		if r.Turnover != "" {
			rs.Turnover = alphabet.MustParse([]rune(r.Turnover)[0])
		}
	}
	if sh.Reflector != "" {
		if settings.Reflector, err = wiring.ParseReflectorModel(sh.Reflector); err != nil {
			return enigma.Settings{}, fmt.Errorf("%w: %w", ErrInvalidKeysheet, err)
		}
	}
	var seen [plugboard.Plugs]bool
	for name, letter := range sh.Plugs {
		id, err := plugboard.ParsePlugID(name)
		if err != nil {
			return enigma.Settings{}, fmt.Errorf("%w: %w", ErrInvalidKeysheet, err)
		}
		// plug names are case insensitive, RedA and reda are the same plug
		if seen[id] {
			return enigma.Settings{}, fmt.Errorf("%w: %w: %s", ErrInvalidKeysheet, ErrDuplicatePlug, id)
		}
		seen[id] = true
		if letter == "" {
			settings.Plugs[id] = alphabet.None
			continue
		}
		settings.Plugs[id] = alphabet.MustParse([]rune(letter)[0])
	}

	if err = settings.Validate(); err != nil {
		return enigma.Settings{}, fmt.Errorf("%w: %w", ErrInvalidKeysheet, err)
	}
	return settings, nil
}

// FromSettings is the reverse of Sheet.Settings, unplugged sockets are left out
func FromSettings(name string, s enigma.Settings) Sheet {
	sheet := Sheet{
		Name:      name,
		Rotors:    make([]Rotor, 0, rotor.Slots),
		Reflector: s.Reflector.String(),
	}
	for _, rs := range s.Rotors {
		sheet.Rotors = append(sheet.Rotors, Rotor{
			Model:    rs.Model.String(),
			Position: rs.Position,
			Turnover: rs.Turnover.String(),
		})
	}
	for id, l := range s.Plugs {
		if !l.Valid() {
			continue
		}
		if sheet.Plugs == nil {
			sheet.Plugs = make(map[string]string, plugboard.Plugs)
		}
		sheet.Plugs[plugboard.PlugID(id).String()] = l.String()
	}
	return sheet
}

func Marshal(name string, s enigma.Settings) ([]byte, error) {
	return yaml.Marshal(FromSettings(name, s))
}
