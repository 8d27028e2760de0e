package plugboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
)

const (
	Pairs = 3
	Plugs = Pairs * 2
)

type PlugID int

const (
	RedA PlugID = iota
	RedB
	BlueA
	BlueB
	YellowA
	YellowB
)

var ErrUnknownPlug = errors.New("unknown plug")

var plugNames = [Plugs]string{"RedA", "RedB", "BlueA", "BlueB", "YellowA", "YellowB"} // nolint: gochecknoglobals

// Pair is a cable with two plugs.
// A pair swaps its letters only when both ends are inserted into a socket
type Pair struct {
	Ends [2]alphabet.Letter
}

func (p Pair) Plugged() bool {
	return p.Ends[0].Valid() && p.Ends[1].Valid()
}

// Plugboard holds the three cables of the M3 plugboard.
// Letters are not checked for uniqueness across the cables,
// it is up to the caller not to plug two cables into the same socket
type Plugboard struct {
	pairs [Pairs]Pair
}

// New returns a plugboard with all cables unplugged.
func New() *Plugboard {
	return &Plugboard{}
}

// Substitute swaps the letter with its cable partner, if the letter is plugged
func (pb *Plugboard) Substitute(l alphabet.Letter) alphabet.Letter {
	for _, pair := range pb.pairs {
		if !pair.Plugged() {
			continue
		}
		switch l {
		case pair.Ends[0]:
			return pair.Ends[1]
		case pair.Ends[1]:
			return pair.Ends[0]
		}
	}
	return l
}

// SetPlug inserts the plug into the letter's socket, replacing whatever socket it occupied.
// Passing alphabet.None pulls the plug out
func (pb *Plugboard) SetPlug(id PlugID, l alphabet.Letter) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPlug, int(id))
	}
	if !l.Valid() {
		l = alphabet.None
	}
	pb.pairs[id.pair()].Ends[id.end()] = l
	return nil
}

func (pb *Plugboard) Unplug(id PlugID) error {
	return pb.SetPlug(id, alphabet.None)
}

// Plug returns the socket the plug is inserted into, or alphabet.None
func (pb *Plugboard) Plug(id PlugID) alphabet.Letter {
	if !id.Valid() {
		return alphabet.None
	}
	return pb.pairs[id.pair()].Ends[id.end()]
}

func (pb *Plugboard) Pairs() [Pairs]Pair {
	return pb.pairs
}

func (pb *Plugboard) Reset() {
	pb.pairs = [Pairs]Pair{}
}

func ParsePlugID(name string) (PlugID, error) {
	name = strings.TrimSpace(name)
	for i, candidate := range plugNames {
		if strings.EqualFold(candidate, name) {
			return PlugID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlug, name)
}

func (id PlugID) Valid() bool {
	return id >= RedA && id <= YellowB
}

// Partner returns the plug on the other end of the same cable
func (id PlugID) Partner() PlugID {
	return id ^ 1
}

func (id PlugID) String() string {
	if !id.Valid() {
		return "err"
	}
	return plugNames[id]
}

func (id PlugID) pair() int {
	return int(id) / 2
}

func (id PlugID) end() int {
	return int(id) % 2
}
