package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/service"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Mirror the content directory into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range kinds {
				if !validKind(k) {
					return fmt.Errorf("unknown kind %q", k)
				}
			}

			db, err := database.New(cmd.Context(), &a.cfg.Database, a.log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.RunMigrations(); err != nil {
				return err
			}

			source := content.NewFileSource(a.cfg.Content.Dir, a.cfg.Content.Extension)
			sync := service.NewSyncService(source, repository.New(db), a.log)

			job, runErr := sync.Run(cmd.Context(), kinds)
			if job != nil {
				if err := writeJob(cmd.OutOrStdout(), job); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kinds", nil, "content kinds to sync (default all)")
	return cmd
}

func writeJob(w io.Writer, job *models.SyncJob) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(job)
}

func validKind(kind string) bool {
	for _, k := range content.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
