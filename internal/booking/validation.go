package booking

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// IncompleteMessage is what the visitor sees for any missing field.
const IncompleteMessage = "Пожалуйста, заполните все поля"

var (
	// ErrIncomplete is reported for any missing required field. It never says
	// which one.
	ErrIncomplete = errors.New("booking: required fields missing")
	ErrDateInPast = errors.New("booking: date is earlier than today")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that name, phone, service, date and time are all present.
// Values are not format-checked: any non-empty name or phone passes.
func Validate(snap Snapshot) error {
	err := validate.Struct(snap)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrIncomplete
	}
	return fmt.Errorf("validate booking: %w", err)
}
