package enigma

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/plugboard"
	"github.com/sergeii/enigma/pkg/enigma/reflector"
	"github.com/sergeii/enigma/pkg/enigma/rotor"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
)

var ErrInvalidLetter = errors.New("invalid input letter")

type LetterEncodedListener func(alphabet.Letter)

type RotorAdvancedListener func(slot int)

// Result describes a single key press
type Result struct {
	Input    alphabet.Letter
	Output   alphabet.Letter
	Advanced []int
}

// Machine is an M3 Enigma: a plugboard, three rotors and a reflector.
// Every key press and every manual adjustment is applied atomically,
// so a Machine is safe for concurrent use
type Machine struct {
	mu        sync.Mutex
	rotors    *rotor.Bank
	reflector *reflector.Reflector
	plugboard *plugboard.Plugboard

	onEncoded  []LetterEncodedListener
	onAdvanced []RotorAdvancedListener
}

func New() *Machine {
	return &Machine{
		rotors:    rotor.NewBank(),
		reflector: reflector.New(),
		plugboard: plugboard.New(),
	}
}

func NewFromSettings(s Settings) (*Machine, error) {
	m := New()
	if err := m.Apply(s); err != nil {
		return nil, err
	}
	return m, nil
}

func MustNewFromSettings(s Settings) *Machine {
	m, err := NewFromSettings(s)
	if err != nil {
		panic(err)
	}
	return m
}

// OnLetterEncoded subscribes to the lamp lit by every key press
func (m *Machine) OnLetterEncoded(listener LetterEncodedListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEncoded = append(m.onEncoded, listener)
}

// OnRotorAdvanced subscribes to automatic rotor advances.
// The listener is called once per advanced slot, in slot order
func (m *Machine) OnRotorAdvanced(listener RotorAdvancedListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onAdvanced = append(m.onAdvanced, listener)
}

// Encode presses the key r and steps the rotors.
// Keys outside the latin alphabet are rejected, the machine state is not changed then
func (m *Machine) Encode(r rune) (Result, error) {
	l, err := alphabet.Parse(r)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
	}
	m.mu.Lock()
	res := m.press(l)
	encoded, advanced := m.listeners()
	m.mu.Unlock()

	notify(encoded, advanced, res)
	return res, nil
}

// EncodeText presses the keys of text one after another.
// The text must consist of latin letters only, otherwise nothing is encoded
func (m *Machine) EncodeText(text string) (string, error) {
	letters := make([]alphabet.Letter, 0, len(text))
	for _, r := range text {
		l, err := alphabet.Parse(r)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidLetter, r)
		}
		letters = append(letters, l)
	}

	results := make([]Result, 0, len(letters))
	m.mu.Lock()
	for _, l := range letters {
		results = append(results, m.press(l))
	}
	encoded, advanced := m.listeners()
	m.mu.Unlock()

	out := make([]byte, 0, len(results))
	for _, res := range results {
		notify(encoded, advanced, res)
		out = append(out, byte(res.Output))
	}
	return string(out), nil
}

// Table returns the letter every key would light in the current state, without stepping the rotors
func (m *Machine) Table() [alphabet.Size]alphabet.Letter {
	var table [alphabet.Size]alphabet.Letter
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range alphabet.Size {
		table[i] = m.substitute(alphabet.FromIndex(i))
	}
	return table
}

func (m *Machine) SetRotorModel(slot int, model wiring.RotorModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotors.SetModel(slot, model)
}

func (m *Machine) SetRotorPosition(slot, pos int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotors.SetPosition(slot, pos)
}

func (m *Machine) SetRotorTurnover(slot int, turnover alphabet.Letter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotors.SetTurnover(slot, turnover)
}

// ShiftRotor turns the rotor by hand, one position forward or back
func (m *Machine) ShiftRotor(slot int, forward bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if forward {
		return m.rotors.IncrementPosition(slot)
	}
	return m.rotors.DecrementPosition(slot)
}

// CycleRotorModel swaps the rotor for the next or the previous model
func (m *Machine) CycleRotorModel(slot int, forward bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if forward {
		return m.rotors.IncrementModel(slot)
	}
	return m.rotors.DecrementModel(slot)
}

func (m *Machine) SetReflectorModel(model wiring.ReflectorModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reflector.SetModel(model)
}

func (m *Machine) CycleReflectorModel(forward bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if forward {
		m.reflector.Next()
	} else {
		m.reflector.Prev()
	}
}

// SetPlug inserts the plug into the letter's socket, alphabet.None pulls it out.
// Sockets already taken by other plugs are not checked
func (m *Machine) SetPlug(id plugboard.PlugID, l alphabet.Letter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plugboard.SetPlug(id, l)
}

func (m *Machine) Rotor(slot int) (rotor.Rotor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotors.Rotor(slot)
}

func (m *Machine) Reflector() wiring.ReflectorModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reflector.Model()
}

func (m *Machine) Plug(id plugboard.PlugID) alphabet.Letter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plugboard.Plug(id)
}

// Settings takes a snapshot of the machine state
func (m *Machine) Settings() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	var s Settings
	for slot, r := range m.rotors.Rotors() {
		s.Rotors[slot] = RotorSettings{
			Model:    r.Model,
			Position: r.Position,
			Turnover: r.Turnover,
		}
	}
	s.Reflector = m.reflector.Model()
	for id := range plugboard.Plugs {
		s.Plugs[id] = m.plugboard.Plug(plugboard.PlugID(id))
	}
	return s
}

// Apply overwrites the whole machine state with the snapshot.
// Invalid settings are rejected as a whole
func (m *Machine) Apply(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	rotors := rotor.NewBank()
	for slot, rs := range s.Rotors {
		if err := rotors.SetModel(slot, rs.Model); err != nil {
			return err
		}
		if err := rotors.SetPosition(slot, rs.Position); err != nil {
			return err
		}
		if err := rotors.SetTurnover(slot, rs.Turnover); err != nil {
			return err
		}
	}
	refl := reflector.New()
	if err := refl.SetModel(s.Reflector); err != nil {
		return err
	}
	pb := plugboard.New()
	for id, l := range s.Plugs {
		if err := pb.SetPlug(plugboard.PlugID(id), l); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rotors = rotors
	m.reflector = refl
	m.plugboard = pb
	return nil
}

// press must be called with the lock held
func (m *Machine) press(l alphabet.Letter) Result {
	out := m.substitute(l)
	advanced := m.rotors.Step()
	return Result{
		Input:    l,
		Output:   out,
		Advanced: advanced,
	}
}

func (m *Machine) substitute(l alphabet.Letter) alphabet.Letter {
	l = m.plugboard.Substitute(l)
	l = m.rotors.Forward(l)
	l = m.reflector.Reflect(l)
	l = m.rotors.Backward(l)
	return m.plugboard.Substitute(l)
}

func (m *Machine) listeners() ([]LetterEncodedListener, []RotorAdvancedListener) {
	return append([]LetterEncodedListener(nil), m.onEncoded...),
		append([]RotorAdvancedListener(nil), m.onAdvanced...)
}

func notify(encoded []LetterEncodedListener, advanced []RotorAdvancedListener, res Result) {
	for _, listener := range encoded {
		listener(res.Output)
	}
	for _, slot := range res.Advanced {
		for _, listener := range advanced {
			listener(slot)
		}
	}
}
