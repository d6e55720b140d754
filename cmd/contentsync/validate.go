package main

import (
	"fmt"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/service"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check content documents against their schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			source := content.NewFileSource(a.cfg.Content.Dir, a.cfg.Content.Extension)
			problems := service.NewAuditor(source, a.log).Audit(cmd.Context(), kinds)

			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintf(out, "%s: %s: %s\n", p.Path, p.Field, p.Message)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d content problems found", len(problems))
			}
			fmt.Fprintln(out, "content OK")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kinds", nil, "content kinds to check (default all)")
	return cmd
}
