package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a board with its columns and tasks",
		Long: `Render a board with its columns side by side.

Examples:
  kanban board show 3f2c...
  kanban board show --board 3f2c... --descriptions

  # Nested projection for agents
  kanban board show --board 3f2c... --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cmd.Flags().String("board", "", "Board ID (can also be provided as positional argument)")
	cmd.Flags().Bool("descriptions", false, "Render task descriptions as markdown")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetString("board")
	if len(args) > 0 {
		boardID = args[0]
	}
	descriptions, _ := cmd.Flags().GetBool("descriptions")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if boardID == "" {
		return formatter.Fail(cli.Exit(cli.ExitUsage, fmt.Errorf("board ID is required")),
			"Usage: kanban board show <id> or kanban board show --board=<id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	detail, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		return formatter.Fail(err, "Use 'kanban board list' to see available boards")
	}

	if quietMode || jsonOutput {
		return formatter.Success(detail, "")
	}

	fmt.Println(Render(detail, descriptions))
	return nil
}
