package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/config"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/ml"
)

func newModelCmd(cfg *config.Config) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Work with the premium model artifact",
	}

	inspect := &cobra.Command{
		Use:   "inspect",
		Short: "Validate the artifact and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			forest, err := ml.LoadForest(path)
			if err != nil {
				return err
			}
			info := forest.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:    %s\n", info.Name)
			fmt.Fprintf(out, "version: %s\n", info.Version)
			fmt.Fprintf(out, "classes: %s\n", strings.Join(info.Classes, ", "))
			fmt.Fprintf(out, "trees:   %d\n", info.Trees)
			fmt.Fprintf(out, "nodes:   %d\n", info.Nodes)
			return nil
		},
	}
	inspect.Flags().StringVar(&path, "path", cfg.ModelPath, "model artifact path")

	cmd.AddCommand(inspect)
	return cmd
}
