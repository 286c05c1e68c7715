package clienthints

import (
	"maps"
	"slices"
	"strings"
)

// Recognized header names, lower-cased.
const (
	HeaderUA              = "sec-ch-ua"
	HeaderFullVersionList = "sec-ch-ua-full-version-list"
	HeaderFullVersion     = "sec-ch-ua-full-version"
	HeaderModel           = "sec-ch-ua-model"
	HeaderPlatform        = "sec-ch-ua-platform"
	HeaderPlatformVersion = "sec-ch-ua-platform-version"
	HeaderArch            = "sec-ch-ua-arch"
	HeaderBitness         = "sec-ch-ua-bitness"
	HeaderMobile          = "sec-ch-ua-mobile"
	HeaderFormFactors     = "sec-ch-ua-form-factors"
	HeaderRequestedWith   = "x-requested-with"
)

// Brand is a single entry of a brand list, e.g. "Chromium";v="124".
type Brand struct {
	Name    string
	Version string
}

// ClientHints is the structured form of the User-Agent client hint headers.
// The zero value means no hints were sent.
type ClientHints struct {
	brands          []Brand
	fullVersion     string
	model           string
	platform        string
	platformVersion string
	architecture    string
	bitness         string
	mobile          bool
	formFactors     []string
	app             string
}

// FromHeaders builds ClientHints from a raw header map.
// Unknown headers are ignored; it never fails and is idempotent.
func FromHeaders(raw map[string]string) ClientHints {
	values := make(map[string]string, len(raw))
	// Sorted so that colliding spellings of one header resolve the same way
	// on every call.
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		key := normalizeName(name)
		if _, ok := values[key]; !ok {
			values[key] = raw[name]
		}
	}

	var ch ClientHints

	// The full version list carries more detail than sec-ch-ua and wins.
	if v, ok := values[HeaderFullVersionList]; ok {
		ch.brands = ParseBrandList(v)
	}
	if len(ch.brands) == 0 {
		if v, ok := values[HeaderUA]; ok {
			ch.brands = ParseBrandList(v)
		}
	}

	ch.fullVersion = unquote(values[HeaderFullVersion])
	ch.model = unquote(values[HeaderModel])
	ch.platform = unquote(values[HeaderPlatform])
	ch.platformVersion = unquote(values[HeaderPlatformVersion])
	ch.architecture = unquote(values[HeaderArch])
	ch.bitness = unquote(values[HeaderBitness])
	ch.mobile = parseBool(values[HeaderMobile])
	ch.formFactors = parseStringList(values[HeaderFormFactors])
	ch.app = strings.TrimSpace(values[HeaderRequestedWith])

	return ch
}

// Brands returns the ordered brand list.
func (c ClientHints) Brands() []Brand {
	if len(c.brands) == 0 {
		return nil
	}
	out := make([]Brand, len(c.brands))
	copy(out, c.brands)
	return out
}

// BrandVersion returns the version advertised for an exact brand name.
func (c ClientHints) BrandVersion(name string) (string, bool) {
	for _, b := range c.brands {
		if b.Name == name {
			return b.Version, true
		}
	}
	return "", false
}

func (c ClientHints) FullVersion() string     { return c.fullVersion }
func (c ClientHints) Model() string           { return c.model }
func (c ClientHints) Platform() string        { return c.platform }
func (c ClientHints) PlatformVersion() string { return c.platformVersion }
func (c ClientHints) Architecture() string    { return c.architecture }
func (c ClientHints) Bitness() string         { return c.bitness }
func (c ClientHints) IsMobile() bool          { return c.mobile }
func (c ClientHints) App() string             { return c.app }

// FormFactors returns the advertised form factors in source order.
func (c ClientHints) FormFactors() []string {
	if len(c.formFactors) == 0 {
		return nil
	}
	out := make([]string, len(c.formFactors))
	copy(out, c.formFactors)
	return out
}

// IsZero reports whether no hint was present.
func (c ClientHints) IsZero() bool {
	return len(c.brands) == 0 && len(c.formFactors) == 0 &&
		c.fullVersion == "" && c.model == "" && c.platform == "" &&
		c.platformVersion == "" && c.architecture == "" && c.bitness == "" &&
		!c.mobile && c.app == ""
}

// String renders the hints in a stable form, suitable as a cache key input.
func (c ClientHints) String() string {
	if c.IsZero() {
		return ""
	}
	var sb strings.Builder
	for i, b := range c.brands {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(`"` + b.Name + `";v="` + b.Version + `"`)
	}
	fields := []string{
		c.fullVersion, c.model, c.platform, c.platformVersion,
		c.architecture, c.bitness, strings.Join(c.formFactors, ","), c.app,
	}
	for _, f := range fields {
		sb.WriteByte('|')
		sb.WriteString(f)
	}
	if c.mobile {
		sb.WriteString("|?1")
	} else {
		sb.WriteString("|?0")
	}
	return sb.String()
}

// normalizeName maps "HTTP_SEC_CH_UA_MODEL" and "Sec-CH-UA-Model" alike to
// "sec-ch-ua-model".
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	return strings.TrimPrefix(name, "http-")
}

func parseBool(v string) bool {
	v = strings.TrimSpace(v)
	return v == "?1" || v == "1" || strings.EqualFold(v, "true")
}
