package cli

import (
	"github.com/spf13/cobra"

	"clipton/internal/clipboard"
	"clipton/internal/picker"
	"clipton/internal/session"
	"clipton/internal/store"
	"clipton/internal/tui"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Open the picker over the captured history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app)
		},
	}
}

func runShow(cmd *cobra.Command, app *App) error {
	env, err := loadEnv(cmd, app)
	if err != nil {
		return err
	}
	defer env.close()

	list, err := env.st.Load()
	if err != nil {
		return err
	}

	clip, err := clipboard.Detect(false)
	if err != nil {
		return err
	}

	sel, markupRows, err := newSelector(app, env.cfg, list)
	if err != nil {
		return err
	}

	sess := session.Session{
		Store:      env.st,
		List:       list,
		Settings:   env.cfg,
		Selector:   sel,
		Clipboard:  clip,
		MarkupRows: markupRows,
	}
	return sess.Run()
}

// newSelector picks the front-end. Rofi gets pango markup rows; the built-in
// picker renders to the terminal itself and gets plain rows plus a preview
// hook into the raw item text.
func newSelector(app *App, cfg store.Settings, list *store.List) (picker.Selector, bool, error) {
	mode, err := pickerMode(app, cfg)
	if err != nil {
		return nil, false, err
	}
	useRofi := mode == "rofi" || ((mode == "" || mode == "auto") && picker.Installed())
	if useRofi {
		return picker.Rofi{Width: cfg.Width}, true, nil
	}
	preview := func(i int) string {
		it, ok := list.At(i)
		if !ok {
			return ""
		}
		return it.Text
	}
	return &tui.Picker{Preview: preview}, false, nil
}
