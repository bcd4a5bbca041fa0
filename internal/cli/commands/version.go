package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/netparams/pkg/distribution"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display netparams version, build metadata, and the size of the distribution registry.`,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "netparams v%s\n", version)
			_, _ = fmt.Fprintf(w, "commit %s, built %s with %s\n", commit, date, runtime.Version())
			_, _ = fmt.Fprintf(w, "%d distributions registered\n", len(distribution.List()))
		},
	}
}
