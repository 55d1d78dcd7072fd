package filter

import "errors"

// Construction errors.
var (
	ErrMissingOperand = errors.New("filter: missing operand")
	ErrNilOperand     = errors.New("filter: nil operand")
	ErrNotAFilter     = errors.New("filter: value is not a filter")
	ErrUnknownKind    = errors.New("filter: unknown kind")
	ErrInvalidPattern = errors.New("filter: invalid pattern")
)
