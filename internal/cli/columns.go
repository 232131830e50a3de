package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"zotui/internal/store"
)

func newColumnsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "columns PATH",
		Short: "List the columns a library can display",
		Long: "Prints every field name the library's documents carry, one per line.\n" +
			"Use these names in the [list] columns setting of the config file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := store.Open(args[0])
			if err != nil {
				return err
			}
			defer lib.Close()

			cols, err := lib.Columns(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range cols {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
