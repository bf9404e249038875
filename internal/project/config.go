// Package project reads and writes phoenix.yml, the marker file that
// identifies a rebuilt project and records which modules it carries.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project marker file at the output root.
const ConfigFileName = "phoenix.yml"

// Config represents the phoenix.yml structure.
type Config struct {
	Project ProjectConfig           `yaml:"project"`
	Modules map[string]ModuleConfig `yaml:"modules,omitempty"`
}

// ProjectConfig holds project-level identity.
type ProjectConfig struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Architecture string `yaml:"architecture"`
}

// ModuleConfig holds per-module configuration as written at rebuild time.
type ModuleConfig struct {
	Config map[string]any `yaml:"config,omitempty"`
}

// Load reads phoenix.yml from a project root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}
	if cfg.Modules == nil {
		cfg.Modules = make(map[string]ModuleConfig)
	}
	return &cfg, nil
}

// Save writes phoenix.yml into a project root.
func Save(root string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", ConfigFileName, err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", ConfigFileName, err)
	}
	return nil
}

// IsProject reports whether a directory carries a phoenix.yml marker.
func IsProject(root string) bool {
	info, err := os.Stat(filepath.Join(root, ConfigFileName))
	return err == nil && !info.IsDir()
}
