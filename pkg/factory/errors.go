package factory

import "errors"

var (
	// ErrInvalidRequest is returned when the request is missing or has an
	// unsupported type.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingHeaders is returned when the request carries no header collection.
	ErrMissingHeaders = errors.New("request has no headers")

	// ErrInvalidConfig is returned when a configuration value has an
	// unsupported type.
	ErrInvalidConfig = errors.New("invalid detector configuration")

	// ErrServiceNotCreated is returned when a collaborator lookup fails. The
	// lookup error is joined to it.
	ErrServiceNotCreated = errors.New("device detector could not be created")

	// ErrNoLocator is returned when a lookup is needed but no Locator is set.
	ErrNoLocator = errors.New("no service locator configured")

	// ErrUnrecognizedCache marks a cache candidate that matches neither cache
	// protocol. It is reported in Resolution.Degraded, never returned.
	ErrUnrecognizedCache = errors.New("cache candidate matches no supported protocol")
)
