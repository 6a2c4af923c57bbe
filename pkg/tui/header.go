package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const appName = "snipmux"

// renderHeader draws the location on the left and the target pane on the right
func renderHeader(width int, path, target string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLogo)).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	left := titleStyle.Render(appName) + " " + HeaderStyle.Render(path)
	right := DescriptionStyle.Render(fmt.Sprintf("→ %s", target))
	if target == "" {
		right = ""
	}

	// -2 for the padding
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return headerPadding.Render(left)
	}

	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		right,
	))
}
