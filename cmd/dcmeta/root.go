package main

import (
	"io"
	"log/slog"

	"github.com/reoring/dcmeta/i18n"
	"github.com/reoring/dcmeta/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once PersistentPreRunE has run.
type app struct {
	fs         afero.Fs
	configPath string
	verbose    bool
	cfg        config.Config
	logger     *slog.Logger
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}
	cmd := &cobra.Command{
		Use:   "dcmeta",
		Short: "Extract typed Dublin Core metadata from EPUB package documents",
		Long: `dcmeta reads the <metadata> block of OPF package documents (or EPUB archives)
and classifies each element into typed Dublin Core records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newClassifyCmd(a), newSchemaCmd(), newVersionCmd())
	return cmd
}

func (a *app) setup(stderr io.Writer) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	l := config.NewLoader(a.logger)
	l.Fs = a.fs
	cfg, err := l.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	i18n.SetLanguage(cfg.Messages)
	return nil
}
