// Package validation holds the field format checks applied before a write.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// EmailIsValid reports whether s has a local-part@domain shape.
func EmailIsValid(s string) bool {
	return validate.Var(s, "required,email") == nil
}
