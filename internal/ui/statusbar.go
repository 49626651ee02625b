package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelmask.klederson.com/internal/animator"
	"pixelmask.klederson.com/internal/masking"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, state animator.State, size masking.GridSize, stats animator.Stats) string {
	status := ""
	if state == animator.StateActive {
		status = StyleStatusActive.Render("[" + state.String() + "]")
	} else {
		status = StyleStatusIdle.Render("[" + state.String() + "]")
	}

	info := fmt.Sprintf(" Grid: %dx%d  Cells: %d  Ticks: %d  Rate: %.0f/s  Timer: #%d",
		size.Width, size.Height, size.Cells(), stats.Ticks, stats.Rate(), stats.Generation)

	content := status + StyleStatusBar.Render(info)

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
