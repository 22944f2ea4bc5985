package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileHeader = "# Orrery viewer configuration. Command-line flags override these values.\n"

// Marshal encodes the config as the YAML file Load reads.
func (c *Config) Marshal() ([]byte, error) {
	body, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append([]byte(fileHeader), body...), nil
}

// SaveTo writes the config to path, creating parent directories. An empty
// path means config.yaml in the OS config directory.
func (c *Config) SaveTo(path string) (string, error) {
	if path == "" {
		path = filepath.Join(ConfigDir(), "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}
	return path, nil
}
