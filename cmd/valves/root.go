package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "valves",
		Short: "Finds the valve-opening plans that release the most pressure",
		Long: `valves reads puzzle files describing valves, flow rates and tunnels,
and prints the best pressure released by one agent and by two agents.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
	root.PersistentFlags().Bool("debug", false, "Shortcut for --log-level=debug")

	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}
