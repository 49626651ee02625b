package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderDisplayPanel wraps the composed pixel text in a bordered panel,
// centred horizontally and vertically. Text wider than the panel is
// clipped on the right.
func RenderDisplayPanel(width, height int, content string) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	title := StylePanelTitle.Render("DISPLAY")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		if lipgloss.Width(l) > innerW {
			lines[i] = lipgloss.NewStyle().MaxWidth(innerW).Render(l)
		}
	}

	body := lipgloss.Place(innerW, innerH-1, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
	return StylePanelActive.Width(innerW).Height(innerH).Render(title + "\n" + body)
}
