package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/netparams/internal/cli/output"
	"github.com/leapstack-labs/netparams/pkg/core"
)

// CheckOutput is the JSON output structure for the check command.
type CheckOutput struct {
	Network string   `json:"network"`
	Valid   bool     `json:"valid"`
	Nodes   int      `json:"nodes"`
	Classes []string `json:"classes"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [network-file]",
		Short: "Validate a network description without writing output",
		Long: `Load and build a network description and report whether it is valid.
Nothing is written. The exit status is non-zero when the build fails.`,
		Example: `  # Check the configured network
  netparams check

  # Check a specific file with machine-readable output
  netparams check lab.yml -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			path, err := cmdCtx.NetworkPath(args)
			if err != nil {
				return err
			}

			params, err := cmdCtx.Engine.BuildFile(path)
			if err != nil {
				return err
			}

			return renderCheck(cmdCtx.Renderer, path, params)
		},
	}
}

func renderCheck(r *output.Renderer, path string, params *core.NetworkParams) error {
	classes := classNames(params.Classes())

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(CheckOutput{
			Network: path,
			Valid:   true,
			Nodes:   params.NumberOfNodes,
			Classes: classes,
		})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Network check"))
		r.Println("")
		r.Println(output.FormatKeyValue("Network", output.FormatCode(path)))
		r.Println(output.FormatKeyValue("Valid", "yes"))
		r.Println(output.FormatKeyValue("Nodes", fmt.Sprintf("%d", params.NumberOfNodes)))
		r.Println(output.FormatKeyValue("Classes", strings.Join(classes, ", ")))
		r.Println("")
	default:
		r.Success(fmt.Sprintf("%s is valid", path))
		r.Muted(fmt.Sprintf("  %d nodes, %d classes: %s", params.NumberOfNodes, len(classes), strings.Join(classes, ", ")))
	}
	return nil
}

func classNames(keys []core.ClassKey) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return names
}
