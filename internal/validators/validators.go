// Package validators checks decoded request DTOs against their declared
// schemas before any handler logic runs.
//
// The package wraps go-playground/validator: schemas are expressed as
// `validate` struct tags on the models package's request types, and failures
// are reported as a [*ValidationError] carrying per-field detail keyed by the
// field's JSON name.
package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a decoded request object against its schema.
//
// Implementations return nil when the object is well-formed,
// a [*ValidationError] when one or more fields fail their schema, and
// [ErrUnsupportedType] when the object cannot be validated at all.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}

// RequestValidator is the tag-driven implementation of [Validator].
// It is safe for concurrent use and should be constructed once at startup.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator.
//
// Field names in validation failures are taken from the `json` struct tag so
// that error detail matches the wire names clients actually sent.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its `validate` tags.
//
// Returns:
//   - nil if every field passes;
//   - [*ValidationError] with per-field messages if any field fails;
//   - [ErrUnsupportedType] if obj is not a struct (or pointer to one).
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		fields := make(map[string]string, len(fieldErrors))
		for _, fe := range fieldErrors {
			fields[fe.Field()] = describe(fe)
		}
		return &ValidationError{Fields: fields}
	}

	return err
}

// describe renders a single field failure as a short human-readable message.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "uri":
		return "must be a valid URI"
	default:
		return "failed `" + fe.Tag() + "` check"
	}
}
