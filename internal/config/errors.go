package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates negative timeouts or size limits.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUploadConfigs indicates an unknown upload provider or
	// missing provider credentials.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
)
