package encode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/machineflags"
	"github.com/sergeii/enigma/internal/keysheet"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/textprep"
)

var ErrNothingToEncode = errors.New("text contains no letters to encode")

type command struct {
	machineflags.Flags `embed:""`

	Group        int      `default:"0"     help:"Splits the output into groups of that many letters"`                                 // nolint:lll
	Charset      string   `default:"utf-8" help:"Sets the charset of text read from stdin, e.g. latin1, cp1252 or cp437"`             // nolint:lll
	SaveKeysheet string   `help:"Writes the machine setting left after encoding to a keysheet, so the next message can continue from it"` // nolint:lll
	Text         []string `arg:""          help:"Text to encode, read from stdin when omitted"                                         optional:""` // nolint:lll
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

	text, err := c.readText(streams.In)
	if err != nil {
		return err
	}
	letters := textprep.Letters(text)
	if letters == "" {
		return ErrNothingToEncode
	}

	encoded, err := m.EncodeText(letters)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(streams.Out, textprep.Group(encoded, c.Group)); err != nil {
		return err
	}

	if c.SaveKeysheet != "" {
		sheet, err := keysheet.Marshal("", m.Settings())
		if err != nil {
			return err
		}
		if err = os.WriteFile(c.SaveKeysheet, sheet, 0o600); err != nil {
			return fmt.Errorf("failed to save keysheet: %w", err)
		}
	}
	return nil
}

func (c *command) readText(stdin io.Reader) (string, error) {
	if len(c.Text) > 0 {
		return strings.Join(c.Text, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return textprep.Decode(data, c.Charset)
}

type CLI struct {
	Encode command `cmd:"" help:"Encode text on a machine set up with a keysheet or flags"`
}
