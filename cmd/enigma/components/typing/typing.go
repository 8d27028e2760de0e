// Package typing is an interactive terminal machine:
// typed keys light lamps, rotor windows turn as the text goes
package typing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/machineflags"
	"github.com/sergeii/enigma/pkg/enigma"
)

type command struct {
	machineflags.Flags `embed:""`

	Illumination time.Duration `default:"400ms" help:"Sets how long a lamp stays lit after a key press"`
	Group        int           `default:"5"     help:"Splits the typed and the lit text into groups of that many letters"` // nolint:lll
}

func (c *command) Run(streams *commander.Streams) error {
	settings, err := c.Settings()
	if err != nil {
		return err
	}
	m, err := enigma.NewFromSettings(settings)
	if err != nil {
		return err
	}
	program := tea.NewProgram(
		newModel(m, c.Illumination, c.Group),
		tea.WithAltScreen(),
		tea.WithInput(streams.In),
		tea.WithOutput(streams.Out),
	)
	_, err = program.Run()
	return err
}

type CLI struct {
	Type command `cmd:"" help:"Type on an interactive machine in the terminal"`
}
