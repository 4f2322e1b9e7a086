package board

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
	rendererErr  error
)

// getRenderer returns the shared markdown renderer sized to a task card
func getRenderer() (*glamour.TermRenderer, error) {
	rendererOnce.Do(func() {
		renderer, rendererErr = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(styles.ColumnWidth-6),
		)
	})
	return renderer, rendererErr
}

// renderDescription renders markdown, falling back to the raw text
func renderDescription(description string) string {
	r, err := getRenderer()
	if err != nil {
		return description
	}
	out, err := r.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(out)
}

// Render lays the board's columns out side by side
func Render(detail *models.BoardDetail, withDescriptions bool) string {
	title := styles.BoardTitleStyle.Render(detail.Name)
	if len(detail.Columns) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, styles.SubtitleStyle.Render("No columns"))
	}

	columns := make([]string, len(detail.Columns))
	for i, column := range detail.Columns {
		columns[i] = renderColumn(column, withDescriptions)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

func renderColumn(column *models.ColumnDetail, withDescriptions bool) string {
	parts := []string{styles.ColumnTitleStyle.Render(column.Name)}
	if len(column.Tasks) == 0 {
		parts = append(parts, styles.SubtitleStyle.Render("No tasks"))
	}

	for _, task := range column.Tasks {
		card := styles.ValueStyle.Render(task.Name)
		if withDescriptions {
			desc := styles.SubtitleStyle.Render("No description")
			if task.Description != nil && *task.Description != "" {
				desc = renderDescription(*task.Description)
			}
			card = lipgloss.JoinVertical(lipgloss.Left, card, desc)
		}
		parts = append(parts, styles.TaskStyle.Render(card))
	}

	return styles.ColumnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
