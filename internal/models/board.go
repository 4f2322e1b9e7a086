package models

// Board is a single kanban board. Columns hang off it by board_id.
type Board struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// BoardDetail is the nested read projection for one board.
// Columns and their tasks are ordered by position ascending.
type BoardDetail struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Columns []*ColumnDetail `json:"columns"`
}

// ColumnDetail is a column as it appears inside a BoardDetail
type ColumnDetail struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Position int           `json:"position"`
	Tasks    []*TaskDetail `json:"tasks"`
}

// TaskDetail is a task as it appears inside a ColumnDetail
type TaskDetail struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Position    int     `json:"position"`
}

// GetID returns the board ID
func (b *Board) GetID() string { return b.ID }

// GetID returns the board ID
func (b *BoardDetail) GetID() string { return b.ID }
