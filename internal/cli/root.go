package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"clipton/internal/format"
	"clipton/internal/store"
)

type App struct {
	Dir        string
	Picker     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "clipton",
		Short:        "Clipboard history with a rofi (or built-in) picker",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the picker over the captured history
  clipton

  # Start the capture daemon (usually from your session autostart)
  clipton watcher

  # Scriptable access
  clipton list --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => open the picker.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runShow(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("CLIPTON_DIR", ""), "Path to the config/store dir (default: ~/.config/clipton)")
	cmd.PersistentFlags().StringVar(&app.Picker, "picker", "", "Picker front-end override (rofi|builtin)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newWatcherCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newLogCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newClearCmd(app))

	return cmd
}

// runEnv is the resolved per-invocation environment: the store dir, the
// effective settings, and a store handle (with the audit log attached when
// the history_log setting asks for it).
type runEnv struct {
	dir string
	cfg store.Settings
	st  store.Store
}

func loadEnv(cmd *cobra.Command, app *App) (*runEnv, error) {
	dir, err := resolveDir(app)
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadSettings(dir)
	if err != nil {
		return nil, err
	}

	st := store.Store{Dir: dir}
	if err := st.Ensure(); err != nil {
		return nil, err
	}
	if cfg.HistoryLog {
		lg, err := store.OpenClipLog(cmd.Context(), dir)
		if err != nil {
			// The audit log is best-effort; a broken log must not take
			// the clipboard down with it.
			fmt.Fprintf(cmd.ErrOrStderr(), "clipton: history log unavailable: %v\n", err)
		} else {
			st.Log = lg
		}
	}
	return &runEnv{dir: dir, cfg: cfg, st: st}, nil
}

func (e *runEnv) close() {
	if e.st.Log != nil {
		_ = e.st.Log.Close()
	}
}

func resolveDir(app *App) (string, error) {
	if app.Dir != "" {
		return app.Dir, nil
	}
	return store.ConfigDir()
}

// pickerMode resolves the front-end: the --picker flag wins over the
// settings file, and "auto" means rofi when installed.
func pickerMode(app *App, cfg store.Settings) (string, error) {
	mode := app.Picker
	if mode == "" {
		mode = cfg.Picker
	}
	switch mode {
	case "", "auto", "rofi", "builtin":
		return mode, nil
	}
	return "", unknownPickerError{mode: mode}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}
