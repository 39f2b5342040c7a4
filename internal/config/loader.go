package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the file format from the path's extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unsupported file extension %q", filepath.Ext(path))
	}
}

// FormatExtensions returns the supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Load loads the game configuration.
// Search order: customPath -> ~/.pong/pong.{yaml,yml,toml} ->
// ./configs/pong.{yaml,yml,toml} -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error;
// broken files found during the search are skipped.
func Load(customPath string) (PongConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return DefaultPongConfig(), err
		}
		return cfg, nil
	}

	var candidates []string
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, searchNames(dir)...)
	}
	candidates = append(candidates, searchNames("configs")...)

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultPongYAML, FormatYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single configuration file.
func LoadFile(path string) (PongConfig, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return PongConfig{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PongConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return PongConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of the built-in defaults and validates the
// result, so a file only needs to name the values it changes.
func Parse(data []byte, format Format) (PongConfig, error) {
	cfg := DefaultPongConfig()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return PongConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return PongConfig{}, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		return PongConfig{}, fmt.Errorf("unknown format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// Encode serializes the configuration in the given format.
func Encode(cfg PongConfig, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
		}
		return data, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// userConfigDir returns ~/.pong, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong")
}

func searchNames(dir string) []string {
	exts := FormatExtensions()
	names := make([]string, 0, len(exts))
	for _, ext := range exts {
		names = append(names, filepath.Join(dir, "pong"+ext))
	}
	return names
}
