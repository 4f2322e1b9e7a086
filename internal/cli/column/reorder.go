package column

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// ReorderCmd returns the column reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Set the order of every task in a column",
		Long: `Give each task of a column the position of its ID in --order.
The order must list every task of the column exactly once.

Examples:
  kanban column reorder --column 9a1b... --order t3,t1,t2
`,
		RunE: runReorder,
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().StringSlice("order", nil, "Comma separated task IDs in their new order")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

type reorderResult struct {
	ColumnID string   `json:"column_id"`
	Order    []string `json:"order"`
}

func (r reorderResult) GetID() string { return r.ColumnID }

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	columnID, _ := cmd.Flags().GetString("column")
	order, _ := cmd.Flags().GetStringSlice("order")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if order == nil {
		order = []string{}
	}
	if err := cliInstance.App.TaskService.ReorderColumn(ctx, columnID, order); err != nil {
		return formatter.Fail(err, "List the column's tasks with 'kanban board show' and pass every ID once")
	}

	return formatter.Success(reorderResult{ColumnID: columnID, Order: order},
		fmt.Sprintf("✓ Tasks reordered successfully: %s", strings.Join(order, ", ")))
}
