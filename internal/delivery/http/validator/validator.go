// Package validator wires go-playground validation into Echo.
package validator

import (
	domainerrors "lumera/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type customValidator struct {
	validate *validator.Validate
}

// New creates an echo.Validator backed by go-playground/validator.
func New() echo.Validator {
	return &customValidator{validate: validator.New()}
}

// Validate checks the struct tags and maps failures onto the shared
// validation error so the error middleware renders them uniformly.
func (v *customValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
