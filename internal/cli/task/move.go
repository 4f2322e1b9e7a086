package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	taskservice "github.com/thenoetrevino/kanban/internal/services/task"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to a position in a column",
		Long: `Move a task within its column or to another column. Both columns
are renumbered so positions stay contiguous from 0.

Examples:
  # Move to the top of another column
  kanban task move --task 77c0... --to 9a1b... --position 0

  # Assert the column the task is leaving
  kanban task move --task 77c0... --from 5d2e... --to 9a1b... --position 2
`,
		RunE: runMove,
	}

	// Required flags
	cmd.Flags().String("task", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("task"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("to", "", "Destination column ID (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("from", "", "Source column ID (defaults to the task's current column)")
	cmd.Flags().Int("position", 0, "Position in the destination column")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

type moveResult struct {
	TaskID   string `json:"task_id"`
	ColumnID string `json:"column_id"`
	Position int    `json:"position"`
}

func (r moveResult) GetID() string { return r.TaskID }

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskID, _ := cmd.Flags().GetString("task")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
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

	err = cliInstance.App.TaskService.MoveTask(ctx, taskservice.MoveTaskRequest{
		TaskID:              taskID,
		SourceColumnID:      from,
		DestinationColumnID: to,
		Position:            position,
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(moveResult{TaskID: taskID, ColumnID: to, Position: position},
		fmt.Sprintf("✓ Task %s moved successfully", taskID))
}
