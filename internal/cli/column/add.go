package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column to a board",
		Long: `Add a column to a board at a position.

Examples:
  kanban column add --board 3f2c... --name "In Progress" --position 1
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("name", "", "Column name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Int("position", 0, "Column position")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetString("board")
	name, _ := cmd.Flags().GetString("name")
	position, _ := cmd.Flags().GetInt("position")
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

	column, err := cliInstance.App.BoardService.AddColumn(ctx, boardservice.AddColumnRequest{
		BoardID:  boardID,
		Name:     name,
		Position: position,
	})
	if err != nil {
		return formatter.Fail(err, "Use 'kanban board list' to see available boards")
	}

	return formatter.Success(column, fmt.Sprintf("✓ Column '%s' created successfully (ID: %s)", column.Name, column.ID))
}
