package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the display panel and algorithm list horizontally,
// with the menu bar on top and the input and status bars below.
func ComposeLayout(menuBar, displayPanel, algorithmList, inputBar, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, displayPanel, algorithmList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, inputBar, statusBar)
}
