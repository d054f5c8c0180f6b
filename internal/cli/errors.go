package cli

import "errors"

// Error variables for command parsing.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArgCount  = errors.New("wrong number of arguments")
	ErrTextRequired   = errors.New("text is required (or pass --absent)")
	ErrNotInteger     = errors.New("not an integer")
	ErrNotNumber      = errors.New("not a number")
	ErrFloatOperands  = errors.New("--float takes exactly two operands")
)
