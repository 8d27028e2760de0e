package enigma

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/plugboard"
	"github.com/sergeii/enigma/pkg/enigma/rotor"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
)

var ErrInvalidSettings = errors.New("invalid machine settings")

type RotorSettings struct {
	Model    wiring.RotorModel `json:"model"`
	Position int               `json:"position"`
	Turnover alphabet.Letter   `json:"turnover"`
}

// Settings is a complete snapshot of the machine state.
// Rotors are listed from the rightmost slot, plugs are indexed by plugboard.PlugID
type Settings struct {
	Rotors    [rotor.Slots]RotorSettings       `json:"rotors"`
	Reflector wiring.ReflectorModel            `json:"reflector"`
	Plugs     [plugboard.Plugs]alphabet.Letter `json:"plugs"`
}

// DefaultSettings describes a freshly built machine:
// rotors I-I-I at position 1 with turnover 'q', reflector A and nothing plugged in
func DefaultSettings() Settings {
	var s Settings
	for slot := range rotor.Slots {
		s.Rotors[slot] = RotorSettings{
			Model:    wiring.RotorI,
			Position: rotor.MinPosition,
			Turnover: rotor.DefaultTurnover,
		}
	}
	s.Reflector = wiring.ReflectorA
	return s
}

func (s Settings) Validate() error {
	for slot, rs := range s.Rotors {
		if !rs.Model.Valid() {
			return fmt.Errorf("%w: rotor %d: %w", ErrInvalidSettings, slot, wiring.ErrUnknownRotor)
		}
		if rs.Position < rotor.MinPosition || rs.Position > rotor.MaxPosition {
			return fmt.Errorf("%w: rotor %d: position %d out of range", ErrInvalidSettings, slot, rs.Position)
		}
		if !rs.Turnover.Valid() {
			return fmt.Errorf("%w: rotor %d: %w", ErrInvalidSettings, slot, alphabet.ErrNotALetter)
		}
	}
	if !s.Reflector.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, wiring.ErrUnknownReflector)
	}
	for id, l := range s.Plugs {
		if l != alphabet.None && !l.Valid() {
			return fmt.Errorf("%w: plug %s: %w", ErrInvalidSettings, plugboard.PlugID(id), alphabet.ErrNotALetter)
		}
	}
	return nil
}

// Key renders the settings in a compact form that is unique for every machine state,
// e.g. "I.I.I/01.01.01/qqq/A/ab...."
func (s Settings) Key() string {
	var b strings.Builder
	for slot, rs := range s.Rotors {
		if slot > 0 {
			b.WriteByte('.')
		}
		b.WriteString(rs.Model.String())
	}
	b.WriteByte('/')
	for slot, rs := range s.Rotors {
		if slot > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%02d", rs.Position)
	}
	b.WriteByte('/')
	for _, rs := range s.Rotors {
		b.WriteString(rs.Turnover.String())
	}
	b.WriteByte('/')
	b.WriteString(s.Reflector.String())
	b.WriteByte('/')
	for _, l := range s.Plugs {
		if l.Valid() {
			b.WriteByte(byte(l))
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
