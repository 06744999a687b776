package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvesearch"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of valves",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "valves version %s\n", valvesearch.Version)
		},
	}
}
