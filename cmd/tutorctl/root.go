package main

import (
	"encoding/json"
	"fmt"
	"io"

	"tutoragents/config"
	"tutoragents/platform/logger"
	"tutoragents/services/problems"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	dataDir     string
	sessionFile string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tutorctl",
		Short: "Inspect tutoring agents offline",
		Long: `tutorctl renders agent instructions, validates problem documents and
exports tool declarations without starting the server or calling a model.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.dataDir, "data", cfg.DataDir, "directory of <problem-id>.json documents")
	cmd.PersistentFlags().StringVar(&opts.sessionFile, "session", cfg.SessionFile, "session roster file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		newRenderCmd(opts),
		newValidateCmd(opts),
		newProblemsCmd(opts),
		newToolsCmd(opts),
		newPlanCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger() *logger.Logger {
	if !o.verbose {
		return logger.Nop()
	}
	log, err := logger.New("dev")
	if err != nil {
		return logger.Nop()
	}
	return log
}

func (o *rootOptions) catalog() (*problems.Catalog, error) {
	return problems.NewCatalog(o.dataDir, problems.DefaultCacheSize, o.logger())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
