package rotor

import (
	"errors"
	"fmt"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
)

const (
	Slots = 3

	MinPosition = 1
	MaxPosition = alphabet.Size

	DefaultTurnover alphabet.Letter = 'q'
)

var ErrUnknownSlot = errors.New("unknown rotor slot")

type Rotor struct {
	Model    wiring.RotorModel
	Position int
	Turnover alphabet.Letter
	Slot     int
}

// NormalizePosition wraps any integer into the 1-based rotor position range
func NormalizePosition(pos int) int {
	pos = (pos - MinPosition) % alphabet.Size
	if pos < 0 {
		pos += alphabet.Size
	}
	return pos + MinPosition
}

// forward passes the signal from the entry side towards the reflector
func (r *Rotor) forward(l alphabet.Letter) alphabet.Letter {
	table := wiring.ForRotor(r.Model)
	i := l.Index()
	return l.Shift(int(table[i]) - int(alphabet.Letters[i]))
}

// backward passes the reflected signal back towards the entry side
func (r *Rotor) backward(l alphabet.Letter) alphabet.Letter {
	table := wiring.ForRotor(r.Model)
	for j := range alphabet.Size {
		if alphabet.Letter(table[j]) == l {
			return l.Shift(int(alphabet.Letters[j]) - int(table[j]))
		}
	}
	return l
}

// advance moves the rotor one position further and
// reports whether the rotor has stepped onto its turnover
func (r *Rotor) advance() bool {
	r.Position = NormalizePosition(r.Position + 1)
	return r.Position == r.Turnover.Index()
}

// Bank is the set of rotors installed in the machine, slot 0 being the rightmost one
type Bank struct {
	rotors [Slots]Rotor
}

// NewBank returns a bank of rotors model I at position 1 with turnover 'q'
func NewBank() *Bank {
	b := &Bank{}
	for slot := range Slots {
		b.rotors[slot] = Rotor{
			Model:    wiring.RotorI,
			Position: MinPosition,
			Turnover: DefaultTurnover,
			Slot:     slot,
		}
	}
	return b
}

// Forward runs the signal through every rotor from slot 0 to the last slot,
// including the offsets against the static entry wheel and the reflector
func (b *Bank) Forward(l alphabet.Letter) alphabet.Letter {
	l = b.enter(l, 0)
	for slot := range Slots {
		if slot > 0 {
			l = b.between(l, slot-1, slot)
		}
		l = b.rotors[slot].forward(l)
	}
	return b.leave(l, Slots-1)
}

// Backward mirrors Forward for the signal coming back from the reflector
func (b *Bank) Backward(l alphabet.Letter) alphabet.Letter {
	l = b.enter(l, Slots-1)
	for slot := Slots - 1; slot >= 0; slot-- {
		if slot < Slots-1 {
			l = b.between(l, slot+1, slot)
		}
		l = b.rotors[slot].backward(l)
	}
	return b.leave(l, 0)
}

// Step advances the rotors after a key press.
// The rightmost rotor always moves, a rotor that has stepped onto its turnover
// carries the next one. Returns the slots that moved in slot order
func (b *Bank) Step() []int {
	advanced := make([]int, 0, Slots)
	for slot := range Slots {
		advanced = append(advanced, slot)
		if !b.rotors[slot].advance() {
			break
		}
	}
	return advanced
}

func (b *Bank) Rotor(slot int) (Rotor, error) {
	if err := checkSlot(slot); err != nil {
		return Rotor{}, err
	}
	return b.rotors[slot], nil
}

func (b *Bank) Rotors() [Slots]Rotor {
	return b.rotors
}

// SetPosition turns the rotor by hand. Out of range positions are wrapped
func (b *Bank) SetPosition(slot, pos int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	b.rotors[slot].Position = NormalizePosition(pos)
	return nil
}

func (b *Bank) IncrementPosition(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	return b.SetPosition(slot, b.rotors[slot].Position+1)
}

func (b *Bank) DecrementPosition(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	return b.SetPosition(slot, b.rotors[slot].Position-1)
}

func (b *Bank) SetModel(slot int, model wiring.RotorModel) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if !model.Valid() {
		return fmt.Errorf("%w: %d", wiring.ErrUnknownRotor, int(model))
	}
	b.rotors[slot].Model = model
	return nil
}

func (b *Bank) IncrementModel(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	return b.SetModel(slot, b.rotors[slot].Model.Next())
}

func (b *Bank) DecrementModel(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	return b.SetModel(slot, b.rotors[slot].Model.Prev())
}

func (b *Bank) SetTurnover(slot int, turnover alphabet.Letter) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if !turnover.Valid() {
		return fmt.Errorf("%w: turnover %q", alphabet.ErrNotALetter, byte(turnover))
	}
	b.rotors[slot].Turnover = turnover
	return nil
}

// enter accounts for the offset between the static side and the rotor the signal enters
func (b *Bank) enter(l alphabet.Letter, slot int) alphabet.Letter {
	return l.Shift(b.rotors[slot].Position - 1)
}

// leave accounts for the offset between the rotor the signal leaves and the static side
func (b *Bank) leave(l alphabet.Letter, slot int) alphabet.Letter {
	return l.Shift(-(b.rotors[slot].Position - 1))
}

func (b *Bank) between(l alphabet.Letter, prev, next int) alphabet.Letter {
	return l.Shift(b.rotors[next].Position - b.rotors[prev].Position)
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= Slots {
		return fmt.Errorf("%w: %d", ErrUnknownSlot, slot)
	}
	return nil
}
