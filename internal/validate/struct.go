package validate

import (
	"github.com/go-playground/validator/v10"
)

// Validator checks decoded request payloads. Besides the built-in tags it
// understands "isodate" (IsValidDate) and "positive" (IsPositiveNumber).
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		return IsPositiveNumber(fl.Field().Float())
	})
	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure.
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens a validation error into field -> failed tag.
// It returns nil for errors that did not come from Struct.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
