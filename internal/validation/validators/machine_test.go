package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/validation"
)

type machineForm struct {
	Letter    string            `validate:"letter"`
	Rotor     string            `validate:"rotormodel"`
	Reflector string            `validate:"reflectormodel"`
	Plugs     map[string]string `validate:"dive,keys,plugid,endkeys,letter"`
}

func TestMachineValidators(t *testing.T) {
	tests := []struct {
		name string
		form machineForm
		ok   bool
	}{
		{"empty values are not validated", machineForm{}, true},
		{"valid values", machineForm{"q", "III", "b", map[string]string{"RedA": "a", "yellowb": "Z"}}, true},
		{"upper case letter", machineForm{Letter: "Q"}, true},
		{"letter is a digit", machineForm{Letter: "1"}, false},
		{"more than one letter", machineForm{Letter: "qq"}, false},
		{"accented letter", machineForm{Letter: "é"}, false},
		{"unknown rotor", machineForm{Rotor: "VI"}, false},
		{"lower case rotor", machineForm{Rotor: "iv"}, true},
		{"unknown reflector", machineForm{Reflector: "D"}, false},
		{"unknown plug", machineForm{Plugs: map[string]string{"GreenA": "a"}}, false},
		{"invalid plug letter", machineForm{Plugs: map[string]string{"BlueA": "7"}}, false},
	}

	validate, err := validation.New()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.form)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
