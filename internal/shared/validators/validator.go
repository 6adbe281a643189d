package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const tagLogLevel = "loglevel"

// New creates a new validator instance with the project's custom tags registered:
//   - loglevel: the string is a level name zerolog can parse
func New() *Validate {
	validate := validator.New()
	// registration only fails on an empty tag or a nil func
	_ = validate.RegisterValidation(tagLogLevel, validateLogLevel)
	return validate
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}
