package clienthints

import "strings"

// ParseBrandList parses a structured brand list such as
//
//	"Chromium";v="124.0.6367.61", "Google Chrome";v="124.0.6367.61"
//
// Order and the exact brand text are preserved. Members without a name are
// skipped, and a repeated brand keeps its first version.
func ParseBrandList(v string) []Brand {
	members := splitMembers(v)
	if len(members) == 0 {
		return nil
	}

	brands := make([]Brand, 0, len(members))
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		name, params, ok := parseMember(m)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		brands = append(brands, Brand{Name: name, Version: params["v"]})
	}
	if len(brands) == 0 {
		return nil
	}
	return brands
}

// splitMembers splits on commas that are not inside a quoted string.
func splitMembers(v string) []string {
	var (
		out     []string
		start   int
		inQuote bool
		escaped bool
	)
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inQuote:
			escaped = true
		case c == '"':
			inQuote = !inQuote
		case c == ',' && !inQuote:
			if m := strings.TrimSpace(v[start:i]); m != "" {
				out = append(out, m)
			}
			start = i + 1
		}
	}
	if m := strings.TrimSpace(v[start:]); m != "" {
		out = append(out, m)
	}
	return out
}

// parseMember parses `"Name";v="1.0";other=x` into its name and parameters.
func parseMember(m string) (string, map[string]string, bool) {
	parts := splitParams(m)
	if len(parts) == 0 {
		return "", nil, false
	}

	name := unquote(parts[0])
	if name == "" {
		return "", nil, false
	}

	params := make(map[string]string, len(parts)-1)
	for _, p := range parts[1:] {
		key, value, found := strings.Cut(p, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if !found {
			params[key] = ""
			continue
		}
		params[key] = unquote(value)
	}
	return name, params, true
}

// splitParams splits on semicolons outside quotes.
func splitParams(m string) []string {
	var (
		out     []string
		start   int
		inQuote bool
		escaped bool
	)
	for i := 0; i < len(m); i++ {
		c := m[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inQuote:
			escaped = true
		case c == '"':
			inQuote = !inQuote
		case c == ';' && !inQuote:
			out = append(out, m[start:i])
			start = i + 1
		}
	}
	return append(out, m[start:])
}

// unquote strips surrounding whitespace and one pair of double quotes,
// resolving backslash escapes inside the quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// parseStringList parses a list of quoted strings: "Desktop", "XR".
func parseStringList(v string) []string {
	members := splitMembers(v)
	if len(members) == 0 {
		return nil
	}
	out := make([]string, 0, len(members))
	for _, m := range members {
		if s := unquote(m); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
