package task

import "github.com/thenoetrevino/kanban/internal/models"

// change is a single row rewrite produced by a plan. from is the column the
// row must still be in when the write is applied.
type change struct {
	placement models.TaskPlacement
	from      string
}

// taskIDs returns the ids of tasks in slice order
func taskIDs(tasks []*models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// removeTask returns ids without taskID and whether it was present
func removeTask(ids []string, taskID string) ([]string, bool) {
	out := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == taskID {
			found = true
			continue
		}
		out = append(out, id)
	}
	return out, found
}

// insertTask places taskID at position. Positions past the end append.
func insertTask(ids []string, taskID string, position int) []string {
	if position > len(ids) {
		position = len(ids)
	}
	if position < 0 {
		position = 0
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:position]...)
	out = append(out, taskID)
	return append(out, ids[position:]...)
}

// diff compares the desired order of a column with the current rows and
// returns the rows whose column or position must change
func diff(current map[string]*models.Task, columnID string, order []string) []change {
	var changes []change
	for i, id := range order {
		t := current[id]
		if t.ColumnID == columnID && t.Position == i {
			continue
		}
		changes = append(changes, change{
			placement: models.TaskPlacement{TaskID: id, ColumnID: columnID, Position: i},
			from:      t.ColumnID,
		})
	}
	return changes
}

func index(tasks ...[]*models.Task) map[string]*models.Task {
	byID := make(map[string]*models.Task)
	for _, list := range tasks {
		for _, t := range list {
			byID[t.ID] = t
		}
	}
	return byID
}

// planMove computes the writes that move task into destinationID at position.
// source holds the tasks of the task's current column and destination those of
// the target column, both in position order. When both are the same column
// destination is ignored.
func planMove(source, destination []*models.Task, task *models.Task, destinationID string, position int) []change {
	sourceOrder, _ := removeTask(taskIDs(source), task.ID)

	if task.ColumnID == destinationID {
		order := insertTask(sourceOrder, task.ID, position)
		return diff(index(source), destinationID, order)
	}

	destOrder, _ := removeTask(taskIDs(destination), task.ID)
	destOrder = insertTask(destOrder, task.ID, position)

	current := index(source, destination)
	current[task.ID] = task

	changes := diff(current, task.ColumnID, sourceOrder)
	return append(changes, diff(current, destinationID, destOrder)...)
}

// planReorder computes the writes that give every task of a column the
// position of its id in order. order must name each task exactly once.
func planReorder(columnID string, tasks []*models.Task, order []string) ([]change, error) {
	if len(order) != len(tasks) {
		return nil, ErrIncompleteOrder
	}

	current := index(tasks)
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] {
			return nil, ErrDuplicateInOrder
		}
		seen[id] = true
		if _, ok := current[id]; !ok {
			return nil, ErrIncompleteOrder
		}
	}

	return diff(current, columnID, order), nil
}
