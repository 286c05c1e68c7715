package headers

import (
	"maps"
	"net/http"
	"strings"
)

// UserAgent is the canonical (lower-cased) name of the User-Agent header.
const UserAgent = "user-agent"

// Collection is a read-only, case-insensitive view over request headers.
type Collection interface {
	Has(name string) bool
	Get(name string) (string, bool)
	All() map[string]string
}

// Source is anything that can hand out the headers of a request.
type Source interface {
	Headers() Collection
}

// Headers is an immutable Collection keyed by lower-cased header names.
type Headers struct {
	values map[string]string
}

// New builds Headers from a plain name/value map.
// Names are lower-cased; when two names collide after folding, the
// lexicographically smaller original name wins so the result is deterministic.
func New(m map[string]string) Headers {
	values := make(map[string]string, len(m))
	origins := make(map[string]string, len(m))
	for name, value := range m {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if prev, ok := origins[key]; ok && prev < name {
			continue
		}
		origins[key] = name
		values[key] = value
	}
	return Headers{values: values}
}

// FromHTTP converts net/http headers. Multiple values of the same header are
// joined with ", " as allowed by RFC 9110 for list-based fields.
func FromHTTP(h http.Header) Headers {
	values := make(map[string]string, len(h))
	for name, vv := range h {
		if len(vv) == 0 {
			continue
		}
		values[strings.ToLower(name)] = strings.Join(vv, ", ")
	}
	return Headers{values: values}
}

// Has reports whether the header is present.
func (h Headers) Has(name string) bool {
	_, ok := h.values[strings.ToLower(name)]
	return ok
}

// Get returns the header value and whether it was present.
func (h Headers) Get(name string) (string, bool) {
	v, ok := h.values[strings.ToLower(name)]
	return v, ok
}

// All returns a copy of every header, keyed by lower-cased name.
func (h Headers) All() map[string]string {
	return maps.Clone(h.values)
}

// Len returns the number of distinct headers.
func (h Headers) Len() int { return len(h.values) }

type requestSource struct {
	r *http.Request
}

// FromRequest adapts an *http.Request to a Source.
// A nil request yields a Source whose Headers() is nil.
func FromRequest(r *http.Request) Source {
	return requestSource{r: r}
}

func (s requestSource) Headers() Collection {
	if s.r == nil || s.r.Header == nil {
		return nil
	}
	return FromHTTP(s.r.Header)
}

// Extract returns the user agent (empty when absent) and every header as a
// raw map for client-hint processing. Absence of User-Agent is not an error.
func Extract(c Collection) (string, map[string]string) {
	if c == nil {
		return "", map[string]string{}
	}
	raw := c.All()
	if raw == nil {
		raw = map[string]string{}
	}
	if !c.Has(UserAgent) {
		return "", raw
	}
	ua, _ := c.Get(UserAgent)
	return ua, raw
}
