package handlers

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"RaacProms/services"
)

// isValidationError reports whether err should surface as a 400 rather
// than a 500.
func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	if errors.As(err, &verr) {
		return true
	}
	return errors.Is(err, services.ErrUnknownTimepoint)
}
