package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/plugboard"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
)

// ValidateLetter accepts a single latin letter in either case
func ValidateLetter(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// don't validate empty value
	if value == "" {
		return true
	}

	runes := []rune(value)
	if len(runes) != 1 {
		return false
	}
	_, err := alphabet.Parse(runes[0])
	return err == nil
}

func ValidateRotorModel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := wiring.ParseRotorModel(value)
	return err == nil
}

func ValidateReflectorModel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := wiring.ParseReflectorModel(value)
	return err == nil
}

func ValidatePlugID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := plugboard.ParsePlugID(value)
	return err == nil
}
