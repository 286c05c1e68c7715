package container

import "errors"

var (
	// ErrNotFound is returned when no service is registered under a key.
	ErrNotFound = errors.New("service not found")

	// ErrResolve is returned when a factory fails to build its service.
	ErrResolve = errors.New("failed to resolve service")

	// ErrAlreadyRegistered is returned when a factory is registered twice.
	ErrAlreadyRegistered = errors.New("service already registered")

	// ErrEmptyKey is returned for blank service keys.
	ErrEmptyKey = errors.New("service key is empty")

	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("service factory is nil")
)
