package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the referenced record does not exist or does not
	// belong to the acting user. The two cases are deliberately not
	// distinguished.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition means a task action was attempted from a status
	// that does not allow it.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError reports malformed input to a create or update operation.
// The operation has no effect when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var validate = validator.New()

// checkInput runs struct tag validation and converts the first failure into a
// ValidationError.
func checkInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &ValidationError{
			Field:  strings.ToLower(first.Field()),
			Reason: fmt.Sprintf("failed %q rule", first.Tag()),
		}
	}
	return err
}

// orNotFound maps a missing record at the persistence layer to ErrNotFound.
func orNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
