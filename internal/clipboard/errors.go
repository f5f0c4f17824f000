package clipboard

import "errors"

var (
	// ErrUnavailable means no clipboard backend exists in this environment.
	ErrUnavailable = errors.New("clipboard unavailable")
	// ErrWriteFailed wraps a backend failure.
	ErrWriteFailed = errors.New("clipboard write failed")
)
