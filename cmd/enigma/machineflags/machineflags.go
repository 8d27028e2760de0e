// Package machineflags sets a machine up from the command line,
// on top of an optional keysheet
package machineflags

import (
	"errors"
	"fmt"

	"github.com/sergeii/enigma/internal/keysheet"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/enigma/plugboard"
	"github.com/sergeii/enigma/pkg/enigma/rotor"
)

var ErrSlotCount = errors.New("a value for every rotor slot is expected")

type Flags struct {
	Keysheet  string            `help:"Reads the machine setting from a YAML keysheet, the other flags override it" short:"k"          type:"existingfile"`  // nolint:lll
	Rotors    []string          `help:"Sets the rotor models, rightmost first"                                      placeholder:"I,I,I" sep:","`           // nolint:lll
	Positions []int             `help:"Sets the rotor positions 1-26, rightmost first"                              placeholder:"1,1,1" sep:","`           // nolint:lll
	Turnovers []string          `help:"Sets the turnover letters, rightmost first"                                  placeholder:"q,q,q" sep:","`           // nolint:lll
	Reflector string            `help:"Sets the reflector model"                                                    placeholder:"A"`                       // nolint:lll
	Plugs     map[string]string `help:"Plugs a cable end into a letter socket, e.g. RedA=a"                         name:"plug"         placeholder:"ID=x"` // nolint:lll
}

// Settings combines the keysheet and the flags into a validated machine setting.
// Anything left unset keeps the defaults of a freshly built machine
func (f Flags) Settings() (enigma.Settings, error) {
	settings := enigma.DefaultSettings()
	if f.Keysheet != "" {
		var err error
		if _, settings, err = keysheet.Load(f.Keysheet); err != nil {
			return enigma.Settings{}, err
		}
	}

	sheet := keysheet.FromSettings("", settings)
	if err := checkSlots("rotors", len(f.Rotors)); err != nil {
		return enigma.Settings{}, err
	}
	for slot, model := range f.Rotors {
		sheet.Rotors[slot].Model = model
	}
	if err := checkSlots("positions", len(f.Positions)); err != nil {
		return enigma.Settings{}, err
	}
	for slot, pos := range f.Positions {
		sheet.Rotors[slot].Position = pos
	}
	if err := checkSlots("turnovers", len(f.Turnovers)); err != nil {
		return enigma.Settings{}, err
	}
	for slot, turnover := range f.Turnovers {
		sheet.Rotors[slot].Turnover = turnover
	}
	if f.Reflector != "" {
		sheet.Reflector = f.Reflector
	}
	if len(f.Plugs) > 0 && sheet.Plugs == nil {
		sheet.Plugs = make(map[string]string, len(f.Plugs))
	}
	var given [plugboard.Plugs]bool
	for name, letter := range f.Plugs {
		// the same plug may be spelled differently on the sheet
		if id, err := plugboard.ParsePlugID(name); err == nil {
			if given[id] {
				return enigma.Settings{}, fmt.Errorf("%w: --plug %s", keysheet.ErrDuplicatePlug, id)
			}
			given[id] = true
			name = id.String()
		}
		sheet.Plugs[name] = letter
	}

	return sheet.Settings()
}

func checkSlots(flag string, n int) error {
	if n != 0 && n != rotor.Slots {
		return fmt.Errorf("%w: --%s has %d, want %d", ErrSlotCount, flag, n, rotor.Slots)
	}
	return nil
}
