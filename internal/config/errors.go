package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the database DSN is missing
	// or the driver is not supported.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when the HTTP address is missing or
	// a timeout is negative.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAppConfigs is returned when the order stamp layouts are empty.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
