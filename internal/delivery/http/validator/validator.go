// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a shared validator instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator Echo uses for c.Validate calls.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate runs struct tag validation and converts failures into a 400
// so callers can return the error directly.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
