// Package validator wraps go-playground/validator so configuration and domain
// structs can be validated declaratively through `validate` tags, with field
// failures reported as a single joined error.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is the first error in the chain returned by Validate when at
// least one field violates its rules.
var ErrValidation = errors.New("validation failed")

var (
	validator *gvalidator.Validate
	initOnce  sync.Once
)

// errStringFormat describes a single field failure.
//
// Example: "'address': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init prepares the shared validator instance. Field names in error messages
// follow the yaml tag when present, so reported names match the config file.
// It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
		validator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
}

// formatError converts validator errors into ErrValidation joined with one
// message per failing field. Any other error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		field := validationErr.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}

		errs = append(errs, fmt.Errorf(errStringFormat,
			field,
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validation tags. Init is called implicitly.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidation) {
//	    // report the offending fields
//	}
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
