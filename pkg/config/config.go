// Package config loads and validates the CLI configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config controls run-wide behavior of the tsg CLI
type Config struct {
	// Workers is the number of concurrent section traversals
	Workers int `yaml:"workers" validate:"required,min=1,max=1024"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// Output controls renderer behavior
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls renderer behavior
type OutputConfig struct {
	// Compress writes snappy-framed .sz files instead of plain text
	Compress bool `yaml:"compress"`
	// Directory is where multi-file exports (DOT) are written; empty means
	// next to the input
	Directory string `yaml:"directory" validate:"omitempty,dirpath|dir"`
}

var validate = validator.New()

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Workers:  4,
		LogLevel: "info",
	}
}

// Load reads a YAML configuration file and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("field %s failed %s validation", e.Field(), e.Tag())
		}
		return err
	}
	return nil
}
