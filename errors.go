package bootfmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrNoMemory      = errors.New("out of memory")
	ErrArgType       = errors.New("argument type mismatch")
	ErrMissingArg    = errors.New("missing argument")
	ErrExtraArg      = errors.New("extra argument")
	ErrOutOfRange    = errors.New("overflow is detected")
	ErrBadNumber     = errors.New("unrecognized number")
	ErrInvalidConfig = errors.New("invalid config")
)
