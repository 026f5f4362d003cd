package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "towerrush.yaml"

// LoadTowerRush loads the game tuning and validates it.
// Search order: customPath -> ~/.towerrush/configs/towerrush.yaml ->
// ./configs/towerrush.yaml -> embedded default.
func LoadTowerRush(customPath string) (TowerRushConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory.
	// Broken files there are skipped rather than fatal.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Embedded returns the embedded default YAML, falling back to
// DefaultTowerRushConfig if it cannot be parsed.
func Embedded() TowerRushConfig {
	cfg, err := Parse(defaultTowerRushYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultTowerRushConfig()
	}
	return cfg
}

// Parse decodes a YAML document. Keys that are absent keep the values
// of DefaultTowerRushConfig; lists replace the defaults wholesale.
func Parse(data []byte) (TowerRushConfig, error) {
	cfg := DefaultTowerRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg TowerRushConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func readFile(path string) (TowerRushConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TowerRushConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".towerrush", "configs", filename)
}
