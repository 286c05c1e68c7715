package headers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/headers"
)

func TestHeaders_CaseInsensitive(t *testing.T) {
	t.Parallel()

	h := headers.New(map[string]string{
		"User-Agent":       "Mozilla/5.0",
		"Sec-CH-UA-Mobile": "?0",
	})

	assert.True(t, h.Has("user-agent"))
	assert.True(t, h.Has("USER-AGENT"))
	assert.False(t, h.Has("accept"))

	v, ok := h.Get("sec-ch-ua-mobile")
	require.True(t, ok)
	assert.Equal(t, "?0", v)

	assert.Equal(t, 2, h.Len())
}

func TestHeaders_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	h := headers.New(map[string]string{"Accept": "*/*"})
	all := h.All()
	all["accept"] = "changed"
	all["x-new"] = "1"

	v, _ := h.Get("accept")
	assert.Equal(t, "*/*", v)
	assert.False(t, h.Has("x-new"))
}

func TestHeaders_CollisionIsDeterministic(t *testing.T) {
	t.Parallel()

	for range 20 {
		h := headers.New(map[string]string{
			"X-Test": "upper",
			"x-test": "lower",
		})
		v, _ := h.Get("x-test")
		assert.Equal(t, "upper", v)
	}
}

func TestFromHTTP(t *testing.T) {
	t.Parallel()

	hh := http.Header{}
	hh.Add("Accept-Language", "en")
	hh.Add("Accept-Language", "de")
	hh.Set("User-Agent", "curl/8.0")

	h := headers.FromHTTP(hh)

	v, ok := h.Get("accept-language")
	require.True(t, ok)
	assert.Equal(t, "en, de", v)
	assert.Equal(t, map[string]string{
		"accept-language": "en, de",
		"user-agent":      "curl/8.0",
	}, h.All())
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("request headers", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", "agent")

		c := headers.FromRequest(req).Headers()
		require.NotNil(t, c)
		assert.True(t, c.Has("user-agent"))
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, headers.FromRequest(nil).Headers())
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     headers.Collection
		wantUA string
		rawLen int
	}{
		{
			name:   "user agent present",
			in:     headers.New(map[string]string{"User-Agent": "X", "Sec-CH-UA-Model": `"Pixel"`}),
			wantUA: "X",
			rawLen: 2,
		},
		{
			name:   "user agent absent",
			in:     headers.New(map[string]string{"Accept": "*/*"}),
			wantUA: "",
			rawLen: 1,
		},
		{
			name:   "empty collection",
			in:     headers.New(nil),
			wantUA: "",
			rawLen: 0,
		},
		{
			name:   "nil collection",
			in:     nil,
			wantUA: "",
			rawLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ua, raw := headers.Extract(tt.in)
			assert.Equal(t, tt.wantUA, ua)
			assert.NotNil(t, raw)
			assert.Len(t, raw, tt.rawLen)
		})
	}
}
