package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidField    = errors.New("field has invalid value")
)
