package main

import (
	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	cfg *config.Config
	log zerolog.Logger

	contentDir string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "contentsync",
		Short:         "Mirror and validate portfolio content",
		Long:          "contentsync copies the JSON content tree into the database mirror and reports documents that do not fit their schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.contentDir, "dir", "", "content directory (overrides CONTENT_DIR)")

	root.AddCommand(newRunCmd(a), newValidateCmd(a), newMigrateCmd(a), newStatusCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.contentDir != "" {
		cfg.Content.Dir = a.contentDir
	}
	a.cfg = cfg
	a.log = logger.New(cfg.Log.Level, cfg.Log.Format)
	return nil
}
