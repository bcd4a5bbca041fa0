package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/netparams/internal/cli/output"
	"github.com/leapstack-labs/netparams/pkg/distribution"
)

// DistributionsOutput is the JSON output structure for the distributions command.
type DistributionsOutput struct {
	Distributions []distribution.Entry `json:"distributions"`
	Count         int                  `json:"count"`
}

// NewDistributionsCommand creates the distributions command.
func NewDistributionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "distributions",
		Aliases: []string{"dists"},
		Short:   "List supported distributions",
		Long: `List the distribution names accepted in arrival and service specs and the
number of numeric arguments each takes.

A spec is the name followed by its arguments separated by whitespace,
for example "Triangular 1.0 2.0 3.0". NoArrivals takes no arguments and marks a
class that never originates at a station.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContextWithoutEngine(cmd).Renderer
			entries := distribution.Entries()

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(DistributionsOutput{Distributions: entries, Count: len(entries)})
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Name, strconv.Itoa(e.Args)})
			}
			r.Header(1, "Distributions")
			r.Table([]string{"Name", "Arguments"}, rows)
			return nil
		},
	}
}
