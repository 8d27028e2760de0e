package wiring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
)

type RotorModel int

const (
	RotorI RotorModel = iota
	RotorII
	RotorIII
	RotorIV
	RotorV
)

type ReflectorModel int

const (
	ReflectorA ReflectorModel = iota
	ReflectorB
	ReflectorC
)

var (
	ErrUnknownRotor     = errors.New("unknown rotor model")
	ErrUnknownReflector = errors.New("unknown reflector model")
)

// RotorModels lists the supported rotor models in the order they are cycled through
var RotorModels = []RotorModel{RotorI, RotorII, RotorIII, RotorIV, RotorV} // nolint: gochecknoglobals

// ReflectorModels lists the supported reflector models in the order they are cycled through
var ReflectorModels = []ReflectorModel{ReflectorA, ReflectorB, ReflectorC} // nolint: gochecknoglobals

var rotorWirings = [...]string{ // nolint: gochecknoglobals
	RotorI:   "ekmflgdqvzntowyhxuspaibrcj",
	RotorII:  "ajdksiruxblhwtmcqgznpyfvoe",
	RotorIII: "bdfhjlcprtxvznyeiwgakmusqo",
	RotorIV:  "esovpzjayquirhxlnftgkdcmwb",
	RotorV:   "vzbrgityupsdnhlxawmjqofeck",
}

var reflectorWirings = [...]string{ // nolint: gochecknoglobals
	ReflectorA: "ejmzalyxvbwfcrquontspikhgd",
	ReflectorB: "yruhqsldpxngokmiebfzcwvjat",
	ReflectorC: "fvpjiaoyedrzxwgctkuqsbnmhl",
}

// notches are the turnover letters of the wartime rotors.
// The machine does not step by them, a rotor's turnover is configured per slot
var notches = [...]alphabet.Letter{ // nolint: gochecknoglobals
	RotorI:   'q',
	RotorII:  'e',
	RotorIII: 'v',
	RotorIV:  'j',
	RotorV:   'z',
}

var rotorNames = [...]string{"I", "II", "III", "IV", "V"} // nolint: gochecknoglobals

var reflectorNames = [...]string{"A", "B", "C"} // nolint: gochecknoglobals

// ForRotor returns the 26 letter permutation of the rotor model
func ForRotor(model RotorModel) string {
	return rotorWirings[model.normalize()]
}

// ForReflector returns the 26 letter involution of the reflector model
func ForReflector(model ReflectorModel) string {
	return reflectorWirings[model.normalize()]
}

// HistoricalNotch returns the turnover letter the rotor model carried in service
func HistoricalNotch(model RotorModel) alphabet.Letter {
	return notches[model.normalize()]
}

func ParseRotorModel(name string) (RotorModel, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, candidate := range rotorNames {
		if candidate == name {
			return RotorModel(i), nil
		}
	}
	return RotorI, fmt.Errorf("%w: %q", ErrUnknownRotor, name)
}

func ParseReflectorModel(name string) (ReflectorModel, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, candidate := range reflectorNames {
		if candidate == name {
			return ReflectorModel(i), nil
		}
	}
	return ReflectorA, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
}

func (m RotorModel) Valid() bool {
	return m >= RotorI && m <= RotorV
}

// Next returns the model that follows m, wrapping V back to I
func (m RotorModel) Next() RotorModel {
	return RotorModels[cycle(indexOf(RotorModels, m.normalize())+1, len(RotorModels))]
}

// Prev returns the model that precedes m, wrapping I back to V
func (m RotorModel) Prev() RotorModel {
	return RotorModels[cycle(indexOf(RotorModels, m.normalize())-1, len(RotorModels))]
}

func (m RotorModel) String() string {
	if !m.Valid() {
		return "err"
	}
	return rotorNames[m]
}

func (m RotorModel) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRotor, int(m))
	}
	return []byte(m.String()), nil
}

func (m *RotorModel) UnmarshalText(text []byte) error {
	parsed, err := ParseRotorModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m RotorModel) normalize() RotorModel {
	return RotorModel(cycle(int(m), len(RotorModels)))
}

func (m ReflectorModel) Valid() bool {
	return m >= ReflectorA && m <= ReflectorC
}

func (m ReflectorModel) Next() ReflectorModel {
	return ReflectorModels[cycle(indexOf(ReflectorModels, m.normalize())+1, len(ReflectorModels))]
}

func (m ReflectorModel) Prev() ReflectorModel {
	return ReflectorModels[cycle(indexOf(ReflectorModels, m.normalize())-1, len(ReflectorModels))]
}

func (m ReflectorModel) String() string {
	if !m.Valid() {
		return "err"
	}
	return reflectorNames[m]
}

func (m ReflectorModel) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownReflector, int(m))
	}
	return []byte(m.String()), nil
}

func (m *ReflectorModel) UnmarshalText(text []byte) error {
	parsed, err := ParseReflectorModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m ReflectorModel) normalize() ReflectorModel {
	return ReflectorModel(cycle(int(m), len(ReflectorModels)))
}

func indexOf[T comparable](list []T, item T) int {
	for i, candidate := range list {
		if candidate == item {
			return i
		}
	}
	return 0
}

func cycle(idx, n int) int {
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
