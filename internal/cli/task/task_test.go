package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
	clitest "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestAddTask(t *testing.T) {
	store, app := clitest.SetupCLITest(t)
	boardID := testutil.CreateTestBoard(t, store, "Board")
	columnID := testutil.CreateTestColumn(t, store, boardID, "Todo", 0)
	existing := testutil.CreateTestTasks(t, store, columnID, "first")

	t.Run("appends without position", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--column", columnID, "--name", "second", "--description", "notes", "--quiet"})
		require.NoError(t, err)

		id := strings.TrimSpace(output)
		assert.Equal(t, []string{existing[0], id}, testutil.TaskOrder(t, store, columnID))

		tasks, err := store.Queries().GetTasksByColumn(t.Context(), columnID)
		require.NoError(t, err)
		require.NotNil(t, tasks[1].Description)
		assert.Equal(t, "notes", *tasks[1].Description)
	})

	t.Run("description from stdin", func(t *testing.T) {
		cmd := AddCmd()
		cmd.SetIn(strings.NewReader("# from stdin"))
		output, err := clitest.ExecuteCLICommand(t, app, cmd,
			[]string{"--column", columnID, "--name", "third", "--description", "-", "--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		data := result["data"].(map[string]any)
		assert.Equal(t, "# from stdin", data["description"])
		assert.Equal(t, float64(2), data["position"])
	})

	t.Run("no description is null", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--column", columnID, "--name", "fourth", "--position", "3", "--json"})
		require.NoError(t, err)

		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Nil(t, data["description"])
	})
}

func TestAddTask_Negative(t *testing.T) {
	store, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"--column", "missing", "--name", "x"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))

	var count int
	require.NoError(t, store.DB().Get(&count, "SELECT COUNT(*) FROM tasks"))
	assert.Zero(t, count)
}

func TestMoveTask(t *testing.T) {
	store, app := clitest.SetupCLITest(t)
	boardID := testutil.CreateTestBoard(t, store, "Board")
	colA := testutil.CreateTestColumn(t, store, boardID, "A", 0)
	colB := testutil.CreateTestColumn(t, store, boardID, "B", 1)
	a := testutil.CreateTestTasks(t, store, colA, "t1", "t2", "t3")
	b := testutil.CreateTestTasks(t, store, colB, "t4", "t5")

	output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(),
		[]string{"--task", a[1], "--from", colA, "--to", colB, "--position", "1", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, a[1], strings.TrimSpace(output))

	assert.Equal(t, []string{a[0], a[2]}, testutil.TaskOrder(t, store, colA))
	assert.Equal(t, []string{b[0], a[1], b[1]}, testutil.TaskOrder(t, store, colB))
	testutil.AssertDensePositions(t, store, colA)
	testutil.AssertDensePositions(t, store, colB)

	// source defaults to the current column
	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(),
		[]string{"--task", a[1], "--to", colB, "--position", "0"})
	require.NoError(t, err)
	assert.Equal(t, []string{a[1], b[0], b[1]}, testutil.TaskOrder(t, store, colB))
}

func TestMoveTask_Negative(t *testing.T) {
	store, app := clitest.SetupCLITest(t)
	boardID := testutil.CreateTestBoard(t, store, "Board")
	colA := testutil.CreateTestColumn(t, store, boardID, "A", 0)
	colB := testutil.CreateTestColumn(t, store, boardID, "B", 1)
	a := testutil.CreateTestTasks(t, store, colA, "t1")

	_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--task", "missing", "--to", colB})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))

	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--task", a[0], "--from", colB, "--to", colA})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))

	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--task", a[0], "--to", colB, "--position", "-2"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
}
