package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipton/internal/store"
)

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole history",
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
			if list.Len() == 0 {
				return nil
			}
			if !yes {
				return needConfirmError{items: list.Len()}
			}

			n := list.Len()
			list.DeleteAll()
			env.st.LogAppend(store.ClipLogOpClear, "")
			if err := env.st.Save(list); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %d items\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting everything")
	return cmd
}
