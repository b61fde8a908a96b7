package duration

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when text does not follow the unit grammar,
	// e.g. "1y" or "5s5d".
	ErrInvalidFormat = errors.New("invalid duration format")

	// ErrOutOfRange is returned when a value does not fit the target range.
	ErrOutOfRange = errors.New("duration out of range")

	// ErrNegative is returned when a negative duration is converted into a
	// type or text form that cannot hold a sign.
	ErrNegative = errors.New("negative duration")
)

// ParseError records a failed parse and the input that caused it.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
