package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelmask.klederson.com/internal/config"
)

var (
	colorPixel      = lipgloss.Color("#00FF41")
	colorBackground = lipgloss.Color("#004A0A")
	colorGap        = lipgloss.Color("#002A06")

	stylePixel      = lipgloss.NewStyle().Foreground(colorPixel).Bold(true)
	styleBackground = lipgloss.NewStyle().Foreground(colorBackground)
	styleGap        = lipgloss.NewStyle().Foreground(colorGap)
)

func styleFor(kind CellKind) lipgloss.Style {
	switch kind {
	case KindPixel:
		return stylePixel
	case KindGap:
		return styleGap
	default:
		return styleBackground
	}
}

// Render produces the styled frame. Runs of cells with the same kind are
// styled together to keep the escape-sequence count down.
func Render(f Frame) string {
	var sb strings.Builder
	for row, cells := range f {
		start := 0
		for i := 1; i <= len(cells); i++ {
			if i < len(cells) && cells[i].Kind == cells[start].Kind {
				continue
			}
			sb.WriteString(styleFor(cells[start].Kind).Render(runString(cells[start:i])))
			start = i
		}
		if row < len(f)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Placeholder returns a dim block, GridHeight rows tall, with msg centred
// on its middle row. It stands in for the frame while no text is shown.
func Placeholder(width int, msg string) string {
	pad := (width - lipgloss.Width(msg)) / 2
	if pad < 0 {
		pad = 0
	}
	lines := make([]string, config.GridHeight)
	lines[config.GridHeight/2] = styleBackground.Render(strings.Repeat(" ", pad) + msg)
	return strings.Join(lines, "\n")
}

func runString(cells []Cell) string {
	buf := make([]rune, len(cells))
	for i, c := range cells {
		buf[i] = c.Symbol
	}
	return string(buf)
}
