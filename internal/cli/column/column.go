package column

import "github.com/spf13/cobra"

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage the columns of a board",
		Long: `Columns hold tasks in position order. Column positions are set when a
column is added and are never renumbered.`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}
