package cmd

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/smartgoals/internal/config"
	"github.com/templui/smartgoals/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the goal store schema",
	}

	cmd.AddCommand(
		migrateStep("up", "Apply all pending migrations", db.RunMigrations),
		migrateStep("down", "Roll back the most recent migration", db.MigrateDown),
		&cobra.Command{
			Use:   "status",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(func(database *sqlx.DB, driver string) error {
					version, err := db.SchemaVersion(database.DB, driver)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
					return nil
				})
			},
		},
	)
	return cmd
}

func migrateStep(use, short string, run func(*sql.DB, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(database *sqlx.DB, driver string) error {
				err := run(database.DB, driver)
				if err != nil {
					return fmt.Errorf("migrate %s: %w", use, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", use)
				return nil
			})
		},
	}
}

func withDB(fn func(database *sqlx.DB, driver string) error) error {
	cfg := config.Load()

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer db.Close(database)

	return fn(database, cfg.DBDriver)
}
