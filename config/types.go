package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the agentschema project file. Every field is optional.
type Config struct {
	// OutputDir is where schemas are written. Relative paths resolve against
	// the directory containing the config file.
	OutputDir string `yaml:"output_dir,omitempty" toml:"output_dir,omitempty" mapstructure:"output_dir"`

	// Indent is the indentation used when pretty-printing schemas.
	Indent string `yaml:"indent,omitempty" toml:"indent,omitempty" mapstructure:"indent"`

	// Extensions captures all other top-level keys, such as 'logging'.
	Extensions map[string]interface{} `yaml:"-" toml:"-" mapstructure:",remain"`

	// path is the file this config was loaded from, empty for LoadFromBytes.
	path string
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// UnmarshalExtension decodes a specific extension's configuration
// into the provided target struct. The target must be a pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// A missing section leaves the target zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
