package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validate checks dto with v, or with the echo instance's Validator when v
// is nil.
func Validate(c echo.Context, v *validator.Validate, dto any) error {
	if v != nil {
		return v.Struct(dto)
	}
	return c.Validate(dto)
}
