package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation rejects a submission before any network call.
	ErrValidation = errors.New("invalid conversion input")
	// ErrConversionService covers transport errors, non-2xx answers and
	// malformed bodies from the conversion service.
	ErrConversionService = errors.New("conversion service failure")
	// ErrClipboard means the clipboard write failed.
	ErrClipboard = errors.New("clipboard failure")
	// ErrNothingToCopy means a copy was requested while there is no output.
	ErrNothingToCopy = errors.New("nothing to copy")
	// ErrInvalidRetention rejects a non-positive history retention.
	ErrInvalidRetention = errors.New("history retention must be positive")
)

// inputModeError is an [ErrValidation] that remembers the rejected mode.
type inputModeError struct {
	mode string
	err  error
}

func (e *inputModeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.err)
}

func (e *inputModeError) Unwrap() []error {
	return []error{ErrValidation, e.err}
}
