package requestid

import (
	"context"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/devicedetector/pkg/headers"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// FromHeaders returns the client supplied request id when it is valid.
func FromHeaders(c headers.Collection) (string, bool) {
	if c == nil {
		return "", false
	}
	id, ok := c.Get(Header)
	if !ok || !Valid(id) {
		return "", false
	}
	return id, true
}

// Ensure returns a context carrying a request id. An id already in ctx wins,
// then a valid X-Request-ID header, otherwise a new UUIDv4 is generated.
func Ensure(ctx context.Context, c headers.Collection) (context.Context, string) {
	if id := FromContext(ctx); id != "" {
		return ctx, id
	}
	id, ok := FromHeaders(c)
	if !ok {
		id = uuid.NewString()
	}
	return WithContext(ctx, id), id
}

// Valid reports whether id is short enough and made of [a-zA-Z0-9_-].
func Valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
