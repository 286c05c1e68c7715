package detector

import "errors"

var (
	// ErrNothingToParse is returned when neither a user agent nor client hints are set.
	ErrNothingToParse = errors.New("no user agent or client hints to parse")

	// ErrCache is returned when the cache handle fails. The result is still usable.
	ErrCache = errors.New("detector cache failure")
)
