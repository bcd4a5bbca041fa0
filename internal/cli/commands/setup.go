package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/netparams/internal/cli/config"
	"github.com/leapstack-labs/netparams/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/netparams/internal/config"
	"github.com/leapstack-labs/netparams/internal/engine"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutEngine(cmd)

	eng, err := engine.New(engine.Config{
		ProbabilityTolerance: cmdCtx.Cfg.ProbabilityTolerance,
		Logger:               cmdCtx.Logger,
	})
	if err != nil {
		return nil, err
	}
	cmdCtx.Engine = eng

	return cmdCtx, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that only read the distribution registry.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// NetworkPath returns the network description to read: the positional
// argument if given, otherwise the configured network file.
func (c *CommandContext) NetworkPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if c.Cfg.Network == "" {
		return "", fmt.Errorf("no network description given\nHint: pass a file argument or set network in netparams.yaml")
	}
	if _, err := os.Stat(c.Cfg.Network); os.IsNotExist(err) {
		return "", fmt.Errorf("network description does not exist: %s\nHint: pass a file argument or use --network to specify a different path", c.Cfg.Network)
	}
	return c.Cfg.Network, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	tolerance, _ := strconv.ParseFloat(os.Getenv(sharedcfg.EnvPrefix+"PROBABILITY_TOLERANCE"), 64)

	return &config.Config{
		Network:              getEnvOrDefault(sharedcfg.EnvPrefix+"NETWORK", config.DefaultNetworkFile),
		Out:                  getEnvOrDefault(sharedcfg.EnvPrefix+"OUT", config.DefaultOutFile),
		Format:               os.Getenv(sharedcfg.EnvPrefix + "FORMAT"),
		OutputFormat:         os.Getenv(sharedcfg.EnvPrefix + "OUTPUT"),
		Verbose:              os.Getenv(sharedcfg.EnvPrefix+"VERBOSE") == "true",
		LogFormat:            getEnvOrDefault(sharedcfg.EnvPrefix+"LOG_FORMAT", config.DefaultLogFormat),
		ProbabilityTolerance: tolerance,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
