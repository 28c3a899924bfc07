// Package config provides configuration management for the calc CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFile is the configuration file written by "calc config init".
const DefaultFile = ".calc.yaml"

// YAMLConfig represents the YAML configuration structure.
type YAMLConfig struct {
	Verbose bool `yaml:"verbose,omitempty" json:"verbose,omitempty"`

	// Output settings
	Output OutputConfig `yaml:"output,omitempty" json:"output,omitempty"`
}

// OutputConfig contains output-related configuration.
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	// Precision is the number of digits printed after the decimal point for
	// floating point results in text mode. -1 prints the shortest form.
	Precision int `yaml:"precision" json:"precision"`
}

// DefaultYAML returns a YAML config with default values.
func DefaultYAML() *YAMLConfig {
	return &YAMLConfig{
		Output: OutputConfig{
			Format:    FormatText,
			Precision: -1,
		},
	}
}

// ErrInvalidConfig is returned when a configuration file holds unusable values.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadYAML reads configFile on top of DefaultYAML. An empty configFile falls
// back to .calc.yaml or .calc.yml in the working directory, and to the plain
// defaults when neither exists.
func LoadYAML(configFile string) (*YAMLConfig, error) {
	cfg := DefaultYAML()

	if configFile == "" {
		configFile = findConfigFile()
	}

	if configFile != "" {
		if err := cfg.decodeFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfigFile() string {
	for _, name := range []string{DefaultFile, ".calc.yml"} {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}

	return ""
}

// decodeFile overlays the YAML document in filename onto c.
func (c *YAMLConfig) decodeFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return nil
}

// validate rejects output settings the report generator cannot honour.
// An empty format means text.
func (c *YAMLConfig) validate() error {
	switch c.Output.Format {
	case "":
		c.Output.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: output.format %q (want %s or %s)", ErrInvalidConfig, c.Output.Format, FormatText, FormatJSON)
	}

	if c.Output.Precision < -1 {
		return fmt.Errorf("%w: output.precision %d (want -1 or more)", ErrInvalidConfig, c.Output.Precision)
	}

	return nil
}

// SaveYAML writes c to filename, creating parent directories as needed.
func (c *YAMLConfig) SaveYAML(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filename, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", filename, err)
	}

	return nil
}
