package typing

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/plugboard"
	"github.com/sergeii/enigma/pkg/enigma/rotor"
	"github.com/sergeii/enigma/pkg/textprep"
)

// tape keeps that many letters of the typed and the lit text on screen
const tapeLen = 60

var lampRows = []string{"qwertzuio", "asdfghjk", "pyxcvbnml"} // nolint: gochecknoglobals

// darkenMsg switches off the lamp lit by the key press with the same sequence number
type darkenMsg struct {
	seq int
}

type model struct {
	machine      *enigma.Machine
	illumination time.Duration
	group        int
	help         help.Model

	selected int
	lit      alphabet.Letter
	seq      int
	advanced [rotor.Slots]bool
	input    []byte
	output   []byte
}

func newModel(m *enigma.Machine, illumination time.Duration, group int) *model {
	mdl := &model{
		machine:      m,
		illumination: illumination,
		group:        group,
		help:         help.New(),
	}
	m.OnLetterEncoded(func(l alphabet.Letter) {
		mdl.lit = l
		mdl.output = appendTape(mdl.output, byte(l))
	})
	m.OnRotorAdvanced(func(slot int) {
		mdl.advanced[slot] = true
	})
	return mdl
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case darkenMsg:
		// a later key press keeps its own lamp on
		if msg.seq == m.seq {
			m.lit = alphabet.None
			m.advanced = [rotor.Slots]bool{}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Left):
		m.selected = min(m.selected+1, rotor.Slots-1)
	case key.Matches(msg, keys.Right):
		m.selected = max(m.selected-1, 0)
	case key.Matches(msg, keys.Up):
		m.machine.ShiftRotor(m.selected, true) // nolint: errcheck
	case key.Matches(msg, keys.Down):
		m.machine.ShiftRotor(m.selected, false) // nolint: errcheck
	case key.Matches(msg, keys.NextRotor):
		m.machine.CycleRotorModel(m.selected, true) // nolint: errcheck
	case key.Matches(msg, keys.PrevRotor):
		m.machine.CycleRotorModel(m.selected, false) // nolint: errcheck
	case key.Matches(msg, keys.Reflector):
		m.machine.CycleReflectorModel(true)
	case key.Matches(msg, keys.PrevReflector):
		m.machine.CycleReflectorModel(false)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		return m.press(msg.Runes[0])
	}
	return nil
}

// press types the key and lights its lamp for the illumination time.
// Keys missing on the keyboard are ignored
func (m *model) press(r rune) tea.Cmd {
	l, err := alphabet.Parse(r)
	if err != nil {
		return nil
	}
	m.advanced = [rotor.Slots]bool{}
	// listeners fire inside Encode and update the lamp and the rotor windows
	if _, err = m.machine.Encode(rune(l)); err != nil {
		return nil
	}
	m.input = appendTape(m.input, byte(l))
	m.seq++
	seq := m.seq
	return tea.Tick(m.illumination, func(time.Time) tea.Msg {
		return darkenMsg{seq: seq}
	})
}

func (m *model) View() string {
	settings := m.machine.Settings()

	windows := make([]string, 0, rotor.Slots+1)
	windows = append(windows, reflectorStyle.Render("UKW\n"+settings.Reflector.String()))
	// the rightmost rotor is drawn on the right, the way the operator sees it
	for slot := rotor.Slots - 1; slot >= 0; slot-- {
		rs := settings.Rotors[slot]
		style := windowStyle
		switch {
		case m.advanced[slot]:
			style = advancedWindowStyle
		case slot == m.selected:
			style = selectedWindowStyle
		}
		letter := string(alphabet.FromIndex(rs.Position - 1).Upper())
		windows = append(windows, style.Render(rs.Model.String()+"\n"+letter))
	}

	lamps := make([]string, 0, len(lampRows))
	for _, row := range lampRows {
		cells := make([]string, 0, len(row))
		for i := range len(row) {
			l := alphabet.Letter(row[i])
			style := lampStyle
			if l == m.lit {
				style = litLampStyle
			}
			cells = append(cells, style.Render(string(l.Upper())))
		}
		lamps = append(lamps, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Enigma M3 · "+settings.Key()) + "\n")
	b.WriteString(contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, windows...)) + "\n")
	b.WriteString(contentStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lamps...)) + "\n")
	b.WriteString(contentStyle.Render(labelStyle.Render("plugs ")+renderPlugs(settings)) + "\n")
	b.WriteString(tapeStyle.Render(labelStyle.Render("in   ")+textprep.Group(string(m.input), m.group)) + "\n")
	b.WriteString(tapeStyle.Render(labelStyle.Render("out  ")+textprep.Group(string(m.output), m.group)) + "\n")
	b.WriteString(helpStyle.Render(m.help.View(keys)))
	return b.String()
}

func renderPlugs(s enigma.Settings) string {
	pairs := make([]string, 0, plugboard.Pairs)
	for p := range plugboard.Pairs {
		a, b := s.Plugs[p*2], s.Plugs[p*2+1]
		if !a.Valid() || !b.Valid() {
			continue
		}
		pairs = append(pairs, a.String()+b.String())
	}
	if len(pairs) == 0 {
		return "none"
	}
	return strings.Join(pairs, " ")
}

func appendTape(tape []byte, l byte) []byte {
	tape = append(tape, l)
	if len(tape) > tapeLen {
		tape = tape[len(tape)-tapeLen:]
	}
	return tape
}
