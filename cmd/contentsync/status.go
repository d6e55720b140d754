package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	var jobID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show mirrored document counts, or one sync job",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(cmd.Context(), &a.cfg.Database, a.log)
			if err != nil {
				return err
			}
			defer db.Close()

			repos := repository.New(db)
			out := cmd.OutOrStdout()

			if jobID != "" {
				job, err := repos.Job.GetByID(cmd.Context(), jobID)
				if err != nil {
					return err
				}
				if job == nil {
					return fmt.Errorf("sync job %s not found", jobID)
				}
				fmt.Fprintf(out, "%s %s: %d documents, %d upserted, %d unchanged, %d pruned, %d failed\n",
					job.ID, job.Status, job.TotalDocs, job.Upserted, job.Unchanged, job.Pruned, job.FailedCount)
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tDOCUMENTS")
			for _, kind := range content.Kinds {
				n, err := repos.Document.Count(cmd.Context(), kind)
				if err != nil {
					return fmt.Errorf("failed to count %s: %w", kind, err)
				}
				fmt.Fprintf(w, "%s\t%d\n", kind, n)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&jobID, "job", "", "show a single sync job")
	return cmd
}
