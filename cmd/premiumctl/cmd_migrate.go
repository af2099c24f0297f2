package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/config"
	pgutil "github.com/vishxesh10/InsureMate-LIve/pkg/postgres"
)

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	var databaseURL, source string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the prediction_results schema",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", cfg.DatabaseURL, "PostgreSQL connection URL")
	cmd.PersistentFlags().StringVar(&source, "source", cfg.MigrationsDir, "migration source URL")

	withMigrator := func(fn func(cmd *cobra.Command, m *pgutil.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			m, err := pgutil.NewMigrator(source, databaseURL)
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(cmd, m)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *pgutil.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration (drops prediction_results)",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *pgutil.Migrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *pgutil.Migrator) error {
				version, dirty, applied, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatVersion(version, dirty, applied))
				return nil
			}),
		},
	)
	return cmd
}

func formatVersion(version uint, dirty, applied bool) string {
	switch {
	case !applied:
		return "no migrations applied"
	case dirty:
		return fmt.Sprintf("version %d (dirty)", version)
	default:
		return fmt.Sprintf("version %d", version)
	}
}
