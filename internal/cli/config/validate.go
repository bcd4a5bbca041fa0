package config

import (
	"fmt"

	"github.com/leapstack-labs/netparams/internal/cli/output"
	"github.com/leapstack-labs/netparams/internal/export"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := export.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("invalid format: %w\nHint: set format to json or yaml, or leave it empty to infer from --out", err)
		}
	}

	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (use text or json)", c.LogFormat)
	}

	if c.ProbabilityTolerance < 0 {
		return fmt.Errorf("probability_tolerance must not be negative, got %g", c.ProbabilityTolerance)
	}

	return nil
}

// ParamsFormat resolves the encoding of the parameter model. An empty
// format is inferred from the output path.
func (c *Config) ParamsFormat() export.Format {
	if c.Format == "" {
		return export.FormatForPath(c.Out)
	}
	f, err := export.ParseFormat(c.Format)
	if err != nil {
		return export.FormatJSON
	}
	return f
}
