package models

// Column is an ordered lane within a board (e.g., "Todo", "In Progress", "Done").
// Position is supplied by the caller at creation and never renumbered.
type Column struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Position int    `db:"position" json:"position"`
	BoardID  string `db:"board_id" json:"board_id"`
}

// GetID returns the column ID
func (c *Column) GetID() string { return c.ID }
