package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidServerConfigs indicates a missing server address or dial timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUserConfigs indicates a missing user name.
	ErrInvalidUserConfigs = errors.New("invalid user configuration")
	// ErrInvalidTransport indicates a transport other than tcp or ws.
	ErrInvalidTransport = errors.New("invalid transport")
)
