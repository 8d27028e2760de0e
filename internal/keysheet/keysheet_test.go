package keysheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/keysheet"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/plugboard"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
)

const daySheet = `
name: day 17
rotors:
  - {model: III, position: 5, turnover: e}
  - {model: ii, position: 10, turnover: V}
  - {model: I, position: 20}
reflector: b
plugs:
  RedA: a
  redb: z
  BlueA: b
  BlueB: y
  YellowA: c
  YellowB: x
`

func TestParse_FullSheet(t *testing.T) {
	sheet, settings, err := keysheet.Parse([]byte(daySheet))
	require.NoError(t, err)
	assert.Equal(t, "day 17", sheet.Name)

	assert.Equal(t, wiring.RotorIII, settings.Rotors[0].Model)
	assert.Equal(t, 5, settings.Rotors[0].Position)
	assert.Equal(t, alphabet.Letter('e'), settings.Rotors[0].Turnover)
	assert.Equal(t, wiring.RotorII, settings.Rotors[1].Model)
	assert.Equal(t, alphabet.Letter('v'), settings.Rotors[1].Turnover)
	assert.Equal(t, 20, settings.Rotors[2].Position)
	assert.Equal(t, alphabet.Letter('q'), settings.Rotors[2].Turnover)
	assert.Equal(t, wiring.ReflectorB, settings.Reflector)
	assert.Equal(t, [plugboard.Plugs]alphabet.Letter{'a', 'z', 'b', 'y', 'c', 'x'}, settings.Plugs)

	m := enigma.MustNewFromSettings(settings)
	cipher, err := m.EncodeText("attackatdawn")
	require.NoError(t, err)
	assert.Equal(t, "tixujxbplxcb", cipher)
}

func TestParse_EmptySheetGivesDefaults(t *testing.T) {
	_, settings, err := keysheet.Parse([]byte("name: blank\n"))
	require.NoError(t, err)
	assert.Equal(t, enigma.DefaultSettings(), settings)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "rotors: [}"},
		{"two rotors", "rotors: [{model: I}, {model: II}]"},
		{"unknown rotor", "rotors: [{model: I}, {model: II}, {model: VIII}]"},
		{"rotor without model", "rotors: [{model: I}, {model: II}, {position: 3}]"},
		{"position out of range", "rotors: [{model: I, position: 27}, {model: II}, {model: III}]"},
		{"bad turnover", "rotors: [{model: I, turnover: '?'}, {model: II}, {model: III}]"},
		{"unknown reflector", "reflector: D"},
		{"unknown plug", "plugs: {GreenA: a}"},
		{"plug is not a letter", "plugs: {RedA: '1'}"},
		{"plug is two letters", "plugs: {RedA: ab}"},
		{"plug given twice", "plugs: {RedA: a, reda: b}"},
		{"name too long", "name: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := keysheet.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, keysheet.ErrInvalidKeysheet)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(daySheet), 0o600))

	sheet, settings, err := keysheet.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "day 17", sheet.Name)
	assert.Equal(t, wiring.ReflectorB, settings.Reflector)

	_, _, err = keysheet.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	_, settings, err := keysheet.Parse([]byte(daySheet))
	require.NoError(t, err)
	settings.Plugs[plugboard.YellowA] = alphabet.None
	settings.Plugs[plugboard.YellowB] = alphabet.None

	data, err := keysheet.Marshal("copy", settings)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "YellowA")

	sheet, decoded, err := keysheet.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "copy", sheet.Name)
	assert.Equal(t, settings, decoded)
}

func TestParse_BlankPlugLeavesSocketEmpty(t *testing.T) {
	_, settings, err := keysheet.Parse([]byte("plugs: {RedA: a, RedB: ''}"))
	require.NoError(t, err)
	assert.Equal(t, alphabet.Letter('a'), settings.Plugs[plugboard.RedA])
	assert.Equal(t, alphabet.None, settings.Plugs[plugboard.RedB])
}

func TestParse_SamePlugSpelledTwice(t *testing.T) {
	for range 20 {
		_, _, err := keysheet.Parse([]byte("plugs: {RedA: a, REDA: b, BlueA: c}"))
		require.ErrorIs(t, err, keysheet.ErrDuplicatePlug)
		assert.ErrorIs(t, err, keysheet.ErrInvalidKeysheet)
	}
}
