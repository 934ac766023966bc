// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can validate bound DTOs by struct tag.
package validator

import (
	domainerrors "tracker/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type structValidator struct {
	validate *validator.Validate
}

// New creates an Echo-compatible validator backed by go-playground/validator.
func New() *structValidator {
	return &structValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag failures surface as the
// VALIDATION_FAILED application error with the offending fields in details.
func (v *structValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
