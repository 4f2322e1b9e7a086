package task

import "github.com/spf13/cobra"

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add and move tasks",
		Long: `Tasks live in a column at a position. Moving a task renumbers the source
and destination columns so positions stay contiguous from 0.`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
