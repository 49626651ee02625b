package ui

// RenderInputBar wraps the text input view in a bordered single-line panel.
func RenderInputBar(width int, inputView, hint string) string {
	innerW := width - 2
	if innerW < 10 {
		innerW = 10
	}
	line := inputView
	if hint != "" {
		line += "  " + StyleHelp.Render(hint)
	}
	return StylePanelBorder.Width(innerW).Render(line)
}
