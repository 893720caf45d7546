package cli

import (
	"errors"
	"os/exec"

	"github.com/spf13/cobra"

	"clipton/internal/clipboard"
	"clipton/internal/picker"
)

type doctorReport struct {
	Dir       string          `json:"dir"`
	Items     int             `json:"items"`
	Settings  bool            `json:"settings_ok"`
	Rofi      bool            `json:"rofi"`
	Clipboard *doctorTool     `json:"clipboard"`
	Notifier  *doctorTool     `json:"notifier"`
	Tools     map[string]bool `json:"tools"`
}

type doctorTool struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func probe(withNotifier bool) *doctorTool {
	if _, err := clipboard.Detect(withNotifier); err != nil {
		return &doctorTool{Error: err.Error()}
	}
	return &doctorTool{OK: true}
}

func newDoctorCmd(app *App) *cobra.Command {
	var fail bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the external tools and the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, app)
			if err != nil {
				return err
			}
			defer env.close()

			report := doctorReport{
				Dir:       env.dir,
				Settings:  true,
				Rofi:      picker.Installed(),
				Clipboard: probe(false),
				Notifier:  probe(true),
				Tools:     map[string]bool{},
			}
			for _, tool := range []string{"wl-copy", "wl-paste", "xclip", "xsel", "clipnotify", "copyevent"} {
				_, err := exec.LookPath(tool)
				report.Tools[tool] = err == nil
			}
			if list, err := env.st.Load(); err == nil {
				report.Items = list.Len()
			}

			if err := writeOut(cmd, app, report); err != nil {
				return err
			}
			if fail && (!report.Clipboard.OK || !report.Notifier.OK) {
				return errors.New("doctor found missing tools")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fail, "fail", false, "Exit non-zero when a required tool is missing")
	return cmd
}
