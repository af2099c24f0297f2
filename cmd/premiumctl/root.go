package main

import (
	"github.com/spf13/cobra"

	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/config"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "premiumctl",
		Short:         "Operate the InsureMate premium service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(cfg),
		newModelCmd(cfg),
		newStatsCmd(),
		newResultsCmd(),
		newGRPCHealthCmd(),
		newTailCmd(cfg),
		newCertsCmd(),
	)
	return root
}
