package config

import (
	"fmt"
	"os"

	findfolder "github.com/PistonDevelopers/find-folder"
	"gopkg.in/yaml.v3"
)

const DefaultPath = ".find-folder.yaml"

type Folder struct {
	Name   string             `yaml:"name"`
	Search *findfolder.Search `yaml:"search,omitempty"`
}

type Config struct {
	LogLevel string            `yaml:"log_level"`
	Search   findfolder.Search `yaml:"search"`
	Folders  []Folder          `yaml:"folders"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Search:   findfolder.Both(3, 3),
		Folders:  []Folder{},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields absent from the file keep their defaults
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if cfg.Folders == nil {
		cfg.Folders = []Folder{}
	}

	for i, folder := range cfg.Folders {
		if folder.Name == "" {
			return nil, fmt.Errorf("folders[%d]: name is required", i)
		}
	}

	return cfg, nil
}

// SearchFor returns the strategy configured for name, falling back to the
// default search.
func (c *Config) SearchFor(name string) findfolder.Search {
	for _, folder := range c.Folders {
		if folder.Name == name && folder.Search != nil {
			return *folder.Search
		}
	}
	return c.Search
}
