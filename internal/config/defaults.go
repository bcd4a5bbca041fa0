// Package config provides shared configuration defaults and config file
// discovery for netparams.
package config

// Default configuration values.
const (
	DefaultNetworkFile = "network.yml"
	DefaultOutFile     = "params.json"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogFormat   = "text"
	DefaultTolerance   = 0.0
)

// StdoutPath is the --out value that writes to standard output.
const StdoutPath = "-"

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "NETPARAMS_"
