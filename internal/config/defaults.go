package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultYAML []byte

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	return defaultYAML
}

// Default returns the embedded defaults parsed into a Config.
func Default() Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic("config: embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// Ptr returns a pointer to v, for building a Config in code.
func Ptr[T any](v T) *T {
	return &v
}
