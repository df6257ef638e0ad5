package config

import (
	"strings"

	"github.com/grovetools/agentschema/errors"
)

var indentChars = " \t"

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.ContainsRune(c.OutputDir, 0) {
		return errors.ConfigInvalid("output_dir contains a NUL byte").
			WithDetail("output_dir", c.OutputDir)
	}

	if strings.Trim(c.Indent, indentChars) != "" {
		return errors.ConfigInvalid("indent may only contain spaces and tabs").
			WithDetail("indent", c.Indent)
	}

	return nil
}
