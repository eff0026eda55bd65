package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a malformed database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
