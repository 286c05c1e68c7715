package cache

import "errors"

var (
	// ErrIncompatibleCache is returned by Classify when a key-value backend
	// declares capabilities the detector cannot work with.
	ErrIncompatibleCache = errors.New("cache backend capabilities are incompatible")

	// ErrInvalidKey is returned for empty keys or keys containing line breaks.
	ErrInvalidKey = errors.New("cache key is invalid")

	// ErrKeyTooLong is returned when a key exceeds the backend's maximum length.
	ErrKeyTooLong = errors.New("cache key exceeds max length")

	// ErrForeignItem is returned when an item not created by a pool is saved to it.
	ErrForeignItem = errors.New("cache item does not belong to this pool")
)
