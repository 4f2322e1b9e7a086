package task

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	taskservice "github.com/thenoetrevino/kanban/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a column",
		Long: `Add a task to a column. Without --position the task is appended.

Examples:
  kanban task add --column 9a1b... --name "Fix bug"

  # Markdown description from stdin
  cat notes.md | kanban task add --column 9a1b... --name "Write docs" --description -

  # Quiet mode for bash capture
  TASK_ID=$(kanban task add --column 9a1b... --name "Fix bug" --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("name", "", "Task name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().Int("position", 0, "Task position (defaults to the end of the column)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	columnID, _ := cmd.Flags().GetString("column")
	name, _ := cmd.Flags().GetString("name")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := taskservice.AddTaskRequest{ColumnID: columnID, Name: name}

	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		// Handle description from stdin
		if description == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return formatter.Fail(fmt.Errorf("failed to read description: %w", err), "")
			}
			description = string(data)
		}
		req.Description = &description
	}
	if cmd.Flags().Changed("position") {
		position, _ := cmd.Flags().GetInt("position")
		req.Position = &position
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

	task, err := cliInstance.App.TaskService.AddTask(ctx, req)
	if err != nil {
		return formatter.Fail(err, "Use 'kanban board show' to see the board's column IDs")
	}

	return formatter.Success(task, fmt.Sprintf("✓ Task '%s' created successfully (ID: %s, position %d)", task.Name, task.ID, task.Position))
}
