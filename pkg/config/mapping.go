package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Map is a loosely typed configuration tree, as decoded from YAML.
type Map map[string]any

// ParseYAML decodes a YAML document into a Map. An empty document yields an
// empty Map.
func ParseYAML(data []byte) (Map, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParsingYAML, err)
	}
	m := make(Map, len(raw))
	for k, v := range raw {
		m[k] = normalize(v)
	}
	return m, nil
}

// LoadFile reads and decodes a YAML configuration file.
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, fmt.Errorf("%s: %w", path, err))
	}
	return ParseYAML(data)
}

// Section returns the nested mapping under name. Mappings with non-string
// keys, as built by hand or by yaml.v2, are converted. Missing or non-mapping
// sections yield an empty Map, never nil.
func (m Map) Section(name string) Map {
	switch v := m[name].(type) {
	case Map:
		return v
	case map[string]any:
		return Map(v)
	case map[any]any:
		return normalize(v).(Map)
	}
	return Map{}
}

// Has reports whether key is present, even with a null value.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// normalize turns nested YAML mappings into Map values and stringifies
// non-string keys so that sections can always be looked up by name.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(Map, len(t))
		for k, vv := range t {
			m[k] = normalize(vv)
		}
		return m
	case map[any]any:
		m := make(Map, len(t))
		for k, vv := range t {
			m[fmt.Sprint(k)] = normalize(vv)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalize(vv)
		}
		return out
	}
	return v
}
