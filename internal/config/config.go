// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults read from a YAML file. Every field is optional;
// values given on the command line take precedence.
type Config struct {
	Font      string   `yaml:"font"`
	Margins   string   `yaml:"margins"`
	PageSize  string   `yaml:"page_size"`
	Landscape bool     `yaml:"landscape"`
	FontDirs  []string `yaml:"font_dirs"`
	Validate  *bool    `yaml:"validate"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Validate == nil {
		validate := true
		cfg.Validate = &validate
	}

	return &cfg, nil
}

// Default is used when no config file was given.
func Default() *Config {
	validate := true
	return &Config{Validate: &validate}
}

// ShouldValidate reports whether written PDFs are checked with pdfcpu.
func (c *Config) ShouldValidate() bool {
	return c.Validate == nil || *c.Validate
}
