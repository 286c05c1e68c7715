// Package config loads configuration from environment variables and from
// YAML files.
//
// # Environment
//
// Load parses the environment into any struct annotated with `env` tags
// (github.com/caarlos0/env/v11). The default .env file is read once through
// github.com/joho/godotenv; LoadEnv reads additional files. Each struct type is
// parsed once per process and served from a cache afterwards; ResetCache
// clears it in tests.
//
//	type DetectorEnv struct {
//	    Cache          string `env:"DEVICE_DETECTOR_CACHE"`
//	    DiscardBotInfo bool   `env:"DEVICE_DETECTOR_DISCARD_BOT_INFORMATION"`
//	}
//
//	var cfg DetectorEnv
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Mappings
//
// ParseYAML and LoadFile decode a document into a Map (gopkg.in/yaml.v3).
// Nested mappings are Map values as well; Section returns one of them, or an
// empty Map when it is missing:
//
//	m, err := config.LoadFile("config/app.yaml")
//	if err != nil {
//	    return err
//	}
//	section := m.Section("device-detector")
//
// # Errors
//
// Sentinel errors work with errors.Is: ErrParsingConfig, ErrNilPointer,
// ErrConfigNotLoaded, ErrLoadingEnvFile, ErrReadingFile and ErrParsingYAML.
package config
