package models

import "errors"

var (
	// ErrUnknownInputMode is returned by [ParseInputMode] for values that are
	// neither a supported mode nor one of its aliases.
	ErrUnknownInputMode = errors.New("unknown input mode")

	// ErrInvalidColor is returned for colours that are not #rgb or #rrggbb.
	ErrInvalidColor = errors.New("invalid color")
)
