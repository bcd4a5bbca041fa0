package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/netparams/internal/export"
	"github.com/leapstack-labs/netparams/internal/watch"
)

// BuildOptions holds options for the build command.
type BuildOptions struct {
	Watch    bool          // Rebuild on change
	Debounce time.Duration // Quiet period before a rebuild
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	opts := &BuildOptions{}
	cmd := &cobra.Command{
		Use:   "build [network-file]",
		Short: "Build simulator parameters from a network description",
		Long: `Build the simulator parameter model from a network description and write it
to --out (default params.json; use - for stdout).

The model holds node-indexed arrival and service distributions per customer
class, server counts, queue capacities, and one transition matrix per class.
Any error aborts the build and nothing is written.`,
		Example: `  # Build network.yml into params.json
  netparams build

  # Build a specific file and print YAML to stdout
  netparams build lab.yml --out - --format yaml

  # Rebuild whenever the file changes
  netparams build lab.yml --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Rebuild when the network file changes")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", watch.DefaultDebounce, "Quiet period before a rebuild in watch mode")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string, opts *BuildOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	path, err := cmdCtx.NetworkPath(args)
	if err != nil {
		return err
	}

	if !opts.Watch {
		return buildOnce(cmdCtx, path)
	}

	// In watch mode a broken network is reported and the next save retried.
	if err := buildOnce(cmdCtx, path); err != nil {
		cmdCtx.Renderer.Error(err.Error())
	}

	w, err := watch.New(watch.Config{
		Path:     path,
		Debounce: opts.Debounce,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdCtx.Renderer.Muted(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", path))
	return w.Run(ctx, func(context.Context) error {
		if err := buildOnce(cmdCtx, path); err != nil {
			cmdCtx.Renderer.Error(err.Error())
		}
		return nil
	})
}

// buildOnce builds the network at path and writes the parameter model.
func buildOnce(c *CommandContext, path string) error {
	params, err := c.Engine.BuildFile(path)
	if err != nil {
		return err
	}

	format := c.Cfg.ParamsFormat()
	if c.Cfg.WritesToStdout() {
		return export.Write(c.Renderer.Writer(), params, format)
	}

	if err := export.WriteFile(c.Cfg.Out, params, format); err != nil {
		return err
	}

	c.Renderer.Success(fmt.Sprintf("Wrote %s (%d nodes, %d classes)",
		c.Cfg.Out, params.NumberOfNodes, len(params.Classes())))
	return nil
}
