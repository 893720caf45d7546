package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"clipton/internal/store"
)

func newLogCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent entries from the mutation audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app)
			if err != nil {
				return err
			}
			cfg, err := store.LoadSettings(dir)
			if err != nil {
				return err
			}
			if !cfg.HistoryLog {
				return errors.New("history log is disabled; set \"history_log\": true in settings.json")
			}

			lg, err := store.OpenClipLog(cmd.Context(), dir)
			if err != nil {
				return err
			}
			defer lg.Close()

			entries, err := lg.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, entries)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of entries to show")
	return cmd
}
