package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	sharedcfg "github.com/leapstack-labs/netparams/internal/config"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// pathKeys are configuration keys holding file paths.
var pathKeys = []string{"network", "out"}

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// findConfigFile finds the config file to use.
// Priority: explicit path > netparams.yaml|yml in CWD or a parent directory
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	if root := sharedcfg.FindProjectRoot(cwd); root != "" {
		return sharedcfg.FindConfigFile(root)
	}
	return ""
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty, stdout, or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || path == sharedcfg.StdoutPath || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
//
// Paths given as flags are relative to the working directory. All other
// relative paths are relative to the project root: the config file's
// directory, or the working directory when there is no config file.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"network":               DefaultNetworkFile,
		"out":                   DefaultOutFile,
		"format":                "",
		"output":                DefaultOutput,
		"verbose":               false,
		"log_format":            DefaultLogFormat,
		"probability_tolerance": sharedcfg.DefaultTolerance,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	configFileUsed = findConfigFile(cfgFile)
	projectRoot, err := os.Getwd()
	if err != nil {
		projectRoot = "."
	}
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
		if abs, err := filepath.Abs(configFileUsed); err == nil {
			projectRoot = filepath.Dir(abs)
		}
	}

	// 3. Load environment variables (NETPARAMS_ prefix)
	// Transform: NETPARAMS_LOG_FORMAT -> log_format
	if err := k.Load(env.Provider(sharedcfg.EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, sharedcfg.EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// Track paths that were explicitly provided as flags (already relative to CWD).
	flagPaths := make(map[string]string)

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			val := posflag.FlagVal(flags, f)

			for _, pk := range pathKeys {
				if key == pk {
					if s, ok := val.(string); ok && s != "" && s != sharedcfg.StdoutPath {
						if abs, err := filepath.Abs(s); err == nil {
							flagPaths[key] = abs
						}
					}
				}
			}

			return key, val
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Resolve relative paths
	cfg.ProjectRoot = projectRoot
	if p, ok := flagPaths["network"]; ok {
		cfg.Network = p
	} else {
		cfg.Network = resolvePathRelativeTo(cfg.Network, projectRoot)
	}
	if p, ok := flagPaths["out"]; ok {
		cfg.Out = p
	} else {
		cfg.Out = resolvePathRelativeTo(cfg.Out, projectRoot)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.New(slog.DiscardHandler)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
