package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the user config directories.
const FileName = "config.yaml"

// LocalPath is the project-relative config checked after the user files.
var LocalPath = filepath.Join("configs", "pipes.yaml")

// Parse decodes YAML into a Config. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads the configuration, layered over the embedded defaults.
// Search order: customPath -> $XDG_CONFIG_HOME/pipes/config.yaml ->
// ~/.pipes/config.yaml -> ./configs/pipes.yaml -> embedded default.
// The first file found wins. It returns the path used, empty for the
// embedded default.
func Load(customPath string) (Config, string, error) {
	base := Default()

	// An explicit path must exist and parse.
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Config{}, "", err
		}
		return base.Merge(cfg), customPath, nil
	}

	for _, path := range SearchPaths() {
		cfg, err := readFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, "", err
		}
		return base.Merge(cfg), path, nil
	}

	return base, "", nil
}

// SearchPaths lists the implicit config locations in priority order.
func SearchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "pipes", FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".pipes", FileName))
	}
	return append(paths, LocalPath)
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
