// Package main provides the CLI for the netparams queueing network parameter builder.
package main

import (
	"os"

	"github.com/leapstack-labs/netparams/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
