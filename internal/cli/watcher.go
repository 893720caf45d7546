package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"clipton/internal/clipboard"
	"clipton/internal/convert"
	"clipton/internal/title"
	"clipton/internal/watch"
)

const titleFetchTimeout = 10 * time.Second

func newWatcherCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watcher",
		Short: "Run the capture daemon until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, app)
			if err != nil {
				return err
			}
			defer env.close()

			clip, err := clipboard.Detect(true)
			if err != nil {
				return err
			}

			convertersDir := env.cfg.ConvertersDir
			if convertersDir == "" {
				convertersDir = filepath.Join(env.dir, "converters")
			}
			registry, err := convert.NewDefaultRegistry(convertersDir)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.Watcher{
				Store:      env.st,
				Settings:   env.cfg,
				Clip:       clip,
				Converters: registry,
				Titles:     title.NewFetcher(titleFetchTimeout),
			}
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			// Interrupt is the normal way to stop the watcher.
			return nil
		},
	}
}
