package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// configDirEnv overrides the config directory (used by tests and CI).
const configDirEnv = "NG_SKELETON_CONFIG_DIR"

// Dir returns the directory holding config.json: $NG_SKELETON_CONFIG_DIR,
// or ~/.config/ng-skeleton.
func Dir() (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ng-skeleton"), nil
}

// Path returns the full path of config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the config file, or returns Default() if it is missing.
// Fields missing from the file keep their default values.
func LoadConfig() (Config, error) {
	configPath, err := Path()
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to the config file, creating the directory if needed.
func SaveConfig(cfg Config) error {
	configDir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
