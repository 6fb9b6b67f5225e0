package shell

import (
	"fmt"
	"os"

	"github.com/govalues/radix"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of an interactive session.
type Config struct {
	// Base is used for literals written without a base prefix.
	Base int `yaml:"base"`
	// Prompt is printed before every line is read. Empty disables it.
	Prompt string `yaml:"prompt"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Rational appends the reduced fraction to every printed result.
	Rational bool `yaml:"rational"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Base:     radix.DefaultBase,
		Prompt:   "> ",
		LogLevel: "warn",
	}
}

// LoadConfig reads a YAML file over the defaults.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Base < radix.MinBase || c.Base > radix.MaxBase {
		return fmt.Errorf("invalid base %v: must be in [%v, %v]", c.Base, radix.MinBase, radix.MaxBase)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
