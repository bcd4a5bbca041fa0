// Package config provides configuration management for the netparams CLI.
//
// Configuration is layered, lowest to highest precedence: built-in
// defaults, netparams.yaml, NETPARAMS_* environment variables, and
// explicitly set command-line flags.
package config

import sharedcfg "github.com/leapstack-labs/netparams/internal/config"

// Config holds all CLI configuration options.
type Config struct {
	Network              string  `koanf:"network"`
	Out                  string  `koanf:"out"`
	Format               string  `koanf:"format"` // json, yaml; empty infers from --out
	OutputFormat         string  `koanf:"output"`
	Verbose              bool    `koanf:"verbose"`
	LogFormat            string  `koanf:"log_format"`
	ProbabilityTolerance float64 `koanf:"probability_tolerance"`

	// ProjectRoot anchors relative paths. Not loaded from configuration.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultNetworkFile = sharedcfg.DefaultNetworkFile
	DefaultOutFile     = sharedcfg.DefaultOutFile
	DefaultOutput      = sharedcfg.DefaultOutput
	DefaultLogFormat   = sharedcfg.DefaultLogFormat
)

// WritesToStdout reports whether the parameter model goes to standard output.
func (c *Config) WritesToStdout() bool {
	return c.Out == sharedcfg.StdoutPath
}
