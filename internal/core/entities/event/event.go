package event

import (
	"github.com/google/uuid"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
)

type Kind string

const (
	LetterEncoded Kind = "letter_encoded"
	RotorAdvanced Kind = "rotor_advanced"
	Configured    Kind = "configured"
	Removed       Kind = "removed"
)

// Event is what subscribers of a session see happening to its machine
type Event struct {
	Kind      Kind            `json:"kind"`
	SessionID uuid.UUID       `json:"session_id"`
	Letter    alphabet.Letter `json:"letter,omitempty"`
	Slot      *int            `json:"slot,omitempty"`
}

func NewLetterEncoded(id uuid.UUID, l alphabet.Letter) Event {
	return Event{Kind: LetterEncoded, SessionID: id, Letter: l}
}

func NewRotorAdvanced(id uuid.UUID, slot int) Event {
	return Event{Kind: RotorAdvanced, SessionID: id, Slot: &slot}
}

func NewConfigured(id uuid.UUID) Event {
	return Event{Kind: Configured, SessionID: id}
}

func NewRemoved(id uuid.UUID) Event {
	return Event{Kind: Removed, SessionID: id}
}
