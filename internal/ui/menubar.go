package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelmask.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, algorithm string, demo bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Enter", " confirm"},
		{"Tab", " algorithm"},
		{"Up/Dn", " browse"},
		{"Ctrl+S", " select"},
		{"Esc", " quit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	mode := ""
	if demo {
		mode = StyleStatusIdle.Render("DEMO") + "  "
	}
	right := mode + StyleMenuLabel.Render("Masking: "+algorithm) + " "

	left := StyleMenuKey.Render(title) + menu

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
