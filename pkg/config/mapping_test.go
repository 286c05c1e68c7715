package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/config"
)

const detectorYAML = `
device-detector:
  cache: cache.redis
  discard-bot-information: 1
  skip-bot-detection: false
other:
  1: numeric key
  list:
    - name: a
`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	m, err := config.ParseYAML([]byte(detectorYAML))
	require.NoError(t, err)

	section := m.Section("device-detector")
	assert.Equal(t, "cache.redis", section["cache"])
	assert.Equal(t, 1, section["discard-bot-information"])
	assert.Equal(t, false, section["skip-bot-detection"])

	other := m.Section("other")
	assert.Equal(t, "numeric key", other["1"])

	list, ok := other["list"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, config.Map{"name": "a"}, list[0])
}

func TestParseYAML_Empty(t *testing.T) {
	t.Parallel()

	m, err := config.ParseYAML(nil)
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
	assert.Equal(t, config.Map{}, m.Section("device-detector"))
}

func TestParseYAML_Malformed(t *testing.T) {
	t.Parallel()

	_, err := config.ParseYAML([]byte("device-detector: [unclosed"))
	assert.ErrorIs(t, err, config.ErrParsingYAML)
}

func TestMap_Section(t *testing.T) {
	t.Parallel()

	m := config.Map{
		"typed":  config.Map{"cache": "a"},
		"plain":  map[string]any{"cache": "b"},
		"scalar": "not a section",
		"loose":  map[any]any{"cache": "c", 1: map[any]any{"nested": true}},
	}

	assert.Equal(t, config.Map{"cache": "a"}, m.Section("typed"))
	assert.Equal(t, config.Map{"cache": "b"}, m.Section("plain"))
	assert.Equal(t, config.Map{"cache": "c", "1": config.Map{"nested": true}}, m.Section("loose"))
	assert.Equal(t, config.Map{}, m.Section("scalar"))
	assert.Equal(t, config.Map{}, m.Section("missing"))

	var nilMap config.Map
	assert.Equal(t, config.Map{}, nilMap.Section("anything"))
}

func TestMap_Has(t *testing.T) {
	t.Parallel()

	m, err := config.ParseYAML([]byte("cache: ~\n"))
	require.NoError(t, err)
	assert.True(t, m.Has("cache"))
	assert.Nil(t, m["cache"])
	assert.False(t, m.Has("missing"))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(detectorYAML), 0o600))

	m, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cache.redis", m.Section("device-detector")["cache"])

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrReadingFile)
}
