package testclass

import "errors"

// Error variables for utility operations.
var (
	ErrNilInput        = errors.New("input is absent")
	ErrInvalidArgument = errors.New("invalid argument")
	// The message text is fixed; callers print it verbatim.
	ErrOperationFailed = errors.New("Something went wrong") //nolint:staticcheck // capitalized message is required output
)
