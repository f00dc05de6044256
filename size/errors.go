package size

import (
	"errors"
)

var (
	ErrMalformedInput = errors.New("Input should be in the format '<value> <unit>'") //nolint:stylecheck
	ErrInvalidNumber  = errors.New("Invalid number format. Provide a valid number.")  //nolint:stylecheck
	ErrInvalidUnit    = errors.New("Invalid unit. Supported units: b, kb, mb, gb.")   //nolint:stylecheck
	ErrOverflow       = errors.New("Value is too large to be represented in bytes.")  //nolint:stylecheck
)

// ParseError describes why an input could not be parsed. Its message is the
// message of the wrapped kind so it can be shown to users as is.
type ParseError struct {
	Input string
	Token string
	Kind  error
}

func (e *ParseError) Error() string {
	return e.Kind.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
