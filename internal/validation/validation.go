package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range map[string]validator.Func{
		"letter":         validators.ValidateLetter,
		"rotormodel":     validators.ValidateRotorModel,
		"reflectormodel": validators.ValidateReflectorModel,
		"plugid":         validators.ValidatePlugID,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, err
		}
	}
	return validate, nil
}
