package factory

import (
	"fmt"

	"github.com/dmitrymomot/devicedetector/pkg/config"
)

// Keys of the raw configuration section.
const (
	DefaultSection           = "device-detector"
	KeyCache                 = "cache"
	KeyDiscardBotInformation = "discard-bot-information"
	KeySkipBotDetection      = "skip-bot-detection"
)

// Config is a typed detector configuration.
type Config interface {
	// CacheDescriptor returns nil, a service key string or a cache value.
	CacheDescriptor() any
	DiscardBotInformation() bool
	SkipBotDetection() bool
}

// StaticConfig is a Config held in memory.
type StaticConfig struct {
	Cache          any
	DiscardBotInfo bool
	SkipBots       bool
}

func (c StaticConfig) CacheDescriptor() any        { return c.Cache }
func (c StaticConfig) DiscardBotInformation() bool { return c.DiscardBotInfo }
func (c StaticConfig) SkipBotDetection() bool      { return c.SkipBots }

// EnvConfig is a Config read from DEVICE_DETECTOR_* environment variables.
type EnvConfig struct {
	Cache          string `env:"DEVICE_DETECTOR_CACHE"`
	DiscardBotInfo bool   `env:"DEVICE_DETECTOR_DISCARD_BOT_INFORMATION" envDefault:"false"`
	SkipBots       bool   `env:"DEVICE_DETECTOR_SKIP_BOT_DETECTION" envDefault:"false"`
}

// LoadEnvConfig loads EnvConfig with config.Load.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := config.Load(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// CacheDescriptor returns the cache service key, or nil when unset.
func (c EnvConfig) CacheDescriptor() any {
	if c.Cache == "" {
		return nil
	}
	return c.Cache
}

func (c EnvConfig) DiscardBotInformation() bool { return c.DiscardBotInfo }
func (c EnvConfig) SkipBotDetection() bool      { return c.SkipBots }

type sourceKind int

const (
	sourceRaw sourceKind = iota
	sourceTyped
)

// ConfigSource is either a typed Config or a raw configuration mapping.
// The zero value is an empty raw mapping.
type ConfigSource struct {
	kind  sourceKind
	typed Config
	raw   config.Map
}

// Typed wraps a typed configuration. A nil Config, or one holding a nil
// pointer, behaves as empty.
func Typed(c Config) ConfigSource {
	if isNilValue(c) {
		return ConfigSource{}
	}
	return ConfigSource{kind: sourceTyped, typed: c}
}

// Raw wraps a configuration mapping whose detector settings live under a
// section key, "device-detector" by default.
func Raw(m map[string]any) ConfigSource {
	return ConfigSource{kind: sourceRaw, raw: config.Map(m)}
}

// ConfigFromValue translates a looked-up configuration value. It accepts a
// Config, a config.Map or a map[string]any; nil is an empty mapping.
func ConfigFromValue(v any) (ConfigSource, error) {
	switch t := v.(type) {
	case nil:
		return ConfigSource{}, nil
	case Config:
		return Typed(t), nil
	case config.Map:
		return Raw(t), nil
	case map[string]any:
		return Raw(t), nil
	}
	return ConfigSource{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidConfig, v)
}

// IsTyped reports whether the source wraps a typed Config.
func (s ConfigSource) IsTyped() bool { return s.kind == sourceTyped }

// rawSettings are the detector settings before resolution.
type rawSettings struct {
	cache   any
	discard bool
	skip    bool
}

func (s ConfigSource) settings(section string) rawSettings {
	if s.kind == sourceTyped {
		return rawSettings{
			cache:   s.typed.CacheDescriptor(),
			discard: s.typed.DiscardBotInformation(),
			skip:    s.typed.SkipBotDetection(),
		}
	}

	m := s.raw.Section(section)
	return rawSettings{
		cache:   m[KeyCache],
		discard: NormalizeFlag(m[KeyDiscardBotInformation]),
		skip:    NormalizeFlag(m[KeySkipBotDetection]),
	}
}
