package analysis

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidOffset            = errors.New("analysis: invalid token offsets")
	ErrInvalidPositionIncrement = errors.New("analysis: negative position increment")
	ErrUnsupportedReset         = errors.New("analysis: input does not support reset")
	ErrInvalidEncoding          = errors.New("analysis: invalid UTF-8 encoding")
	ErrClosed                   = errors.New("analysis: token stream closed")

	ErrUnknownComponent = errors.New("analysis: unknown component")
	ErrDuplicate        = errors.New("analysis: component already registered")
	ErrInvalidConfig    = errors.New("analysis: invalid configuration")
)

// InputError reports a failure of the underlying character source.
// Offset is the byte offset at which the failing read started.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("analysis: input error at offset %d: %v", e.Offset, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
