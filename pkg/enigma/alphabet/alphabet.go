package alphabet

import (
	"errors"
	"fmt"
)

const (
	Size    = 26
	Letters = "abcdefghijklmnopqrstuvwxyz"
)

// Letter is a lower case latin letter.
// The zero value stands for "no letter", e.g. an unplugged plug
type Letter byte

const None Letter = 0

var ErrNotALetter = errors.New("not a latin letter")

// Parse normalizes r to a lower case Letter.
// Anything outside a-z/A-Z is rejected
func Parse(r rune) (Letter, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return Letter(r), nil
	case r >= 'A' && r <= 'Z':
		return Letter(r - 'A' + 'a'), nil
	default:
		return None, fmt.Errorf("%w: %q", ErrNotALetter, r)
	}
}

func MustParse(r rune) Letter {
	l, err := Parse(r)
	if err != nil {
		panic(err)
	}
	return l
}

// FromIndex returns the letter at the given 0-based index, wrapping it into the alphabet
func FromIndex(idx int) Letter {
	return Letter(Letters[Wrap(idx)])
}

// Wrap confines an arbitrary offset to [0, Size)
func Wrap(idx int) int {
	idx %= Size
	if idx < 0 {
		idx += Size
	}
	return idx
}

func (l Letter) Valid() bool {
	return l >= 'a' && l <= 'z'
}

// Index returns the 0-based position of the letter in the alphabet, or -1 for None
func (l Letter) Index() int {
	if !l.Valid() {
		return -1
	}
	return int(l - 'a')
}

// Shift moves the letter by delta positions around the alphabet
func (l Letter) Shift(delta int) Letter {
	return FromIndex(l.Index() + delta)
}

func (l Letter) Upper() rune {
	if !l.Valid() {
		return 0
	}
	return rune(l - 'a' + 'A')
}

func (l Letter) String() string {
	if !l.Valid() {
		return ""
	}
	return string(rune(l))
}

func (l Letter) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Letter) UnmarshalText(text []byte) error {
	switch len(text) {
	case 0:
		*l = None
		return nil
	case 1:
		parsed, err := Parse(rune(text[0]))
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrNotALetter, string(text))
	}
}
