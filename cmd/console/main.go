// Package main implements the console CLI for inspecting the route table
// and generating voucher numbers without a running server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "console",
		Short:         "Registry console tooling",
		Long:          `Inspect the composed console route table and generate voucher identifiers offline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRoutesCmd(),
		newDuplicatesCmd(),
		newVoucherCmd(),
	)

	return root
}
