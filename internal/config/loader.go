package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from a file extension. Anything that is
// not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data over cfg. Fields missing from data keep their
// current values, so callers usually start from DefaultFirefighterConfig.
func Decode(data []byte, format Format, cfg *FirefighterConfig) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("config: invalid toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: invalid yaml: %w", err)
		}
	}
	return nil
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, cfg FirefighterConfig, format Format) error {
	if format == FormatTOML {
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return enc.Close()
}

// LoadFirefighter loads the runner configuration.
// Search order: customPath -> ~/.firerun/configs/firefighter.{yaml,toml} ->
// ./configs/firefighter.{yaml,toml} -> embedded default -> hardcoded default.
// Only an unreadable or invalid customPath is an error; the other
// locations are skipped silently when missing or broken.
func LoadFirefighter(customPath string) (FirefighterConfig, error) {
	cfg := DefaultFirefighterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := Decode(data, FormatForPath(customPath), &cfg); err != nil {
			return DefaultFirefighterConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultFirefighterConfig()
		if err := Decode(data, FormatForPath(path), &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := Decode(defaultFirefighterYAML, FormatYAML, &cfg); err != nil {
		return DefaultFirefighterConfig(), nil
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "firefighter.yaml"),
			filepath.Join(dir, "firefighter.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "firefighter.yaml"),
		filepath.Join("configs", "firefighter.toml"),
	)
}

// userConfigDir returns ~/.firerun/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".firerun", "configs")
}
