package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator implements [Validator] with go-playground/validator struct
// tags. Field names in errors are taken from the json tag when present.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a [StructValidator].
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return &StructValidator{validate: v}
}

// Validate checks the validate tags of obj, which must be a struct or a
// pointer to one. When fields are given only those struct fields are checked.
//
// Missing required fields are reported as [ErrMissingField], any other
// failed rule as [ErrInvalidField].
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var missing, invalid []string
	for _, fe := range validationErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(invalid, ", "))
}
