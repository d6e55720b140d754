package main

import (
	"github.com/portfolio-content-api/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(cmd.Context(), &a.cfg.Database, a.log)
			if err != nil {
				return err
			}
			defer db.Close()

			if down {
				return db.MigrateDown()
			}
			return db.RunMigrations()
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "roll back the last migration instead")
	return cmd
}
