package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request DTO against its `validate` tags.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	return v.Var(s, "required,email") == nil
}
