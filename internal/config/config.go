// Package config loads declarative manifests and turns them into resource
// declarations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ResourceItem is one raw resource declaration read from YAML. The registry
// turns it into a real resource value.
type ResourceItem struct {
	Name   string                 `yaml:"name"`
	Kind   string                 `yaml:"kind"`
	When   string                 `yaml:"when,omitempty"`
	Params map[string]interface{} `yaml:"params"`
}

// Config is a parsed manifest.
type Config struct {
	Vars      map[string]string `yaml:"vars"`
	Resources []ResourceItem    `yaml:"resources"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for i, item := range c.Resources {
		if item.Kind == "" {
			return fmt.Errorf("resource %d (%q) is missing a kind", i, item.Name)
		}
		if item.Name == "" {
			return fmt.Errorf("resource %d of kind %q is missing a name", i, item.Kind)
		}
	}
	return nil
}
