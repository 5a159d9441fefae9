package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct-tag validation. Required-field checks live here
// at the transport boundary; the store accepts whatever it is given.
func Validate(payload any) error {
	return validate.Struct(payload)
}
