package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid conversion service settings
	// (for example, an unparsable address or a non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown input mode or locale).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero prune interval while history is enabled).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidDisplayConfigs indicates invalid display colours.
	ErrInvalidDisplayConfigs = errors.New("invalid display configuration")
)
