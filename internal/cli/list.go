package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Dump the captured history as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, app)
			if err != nil {
				return err
			}
			defer env.close()

			list, err := env.st.Load()
			if err != nil {
				return err
			}
			items := list.Items
			if limit > 0 && limit < len(items) {
				items = items[:limit]
			}
			return writeOut(cmd, app, items)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Only emit the newest N items")
	return cmd
}
