package ui

import (
	"fmt"
	"strings"

	"pixelmask.klederson.com/internal/masking"
)

// RenderAlgorithmList renders the algorithm picker: one entry per
// algorithm, the cursor row highlighted and the selected one marked.
func RenderAlgorithmList(algs []masking.Algorithm, width, height, cursor int, selected string) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 3 {
		innerH = 3
	}

	title := StylePanelTitle.Render(fmt.Sprintf("MASKING [%d]", len(algs)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	all := []string{title, separator}

	for i, a := range algs {
		all = append(all, renderAlgorithmEntry(a, innerW, i, i == cursor, a.Name() == selected)...)
	}

	all = append(all, "", StyleHelp.Render(truncRaw(" Palette: "+paletteString(), innerW)))

	if len(all) > innerH {
		all = all[:innerH]
	}
	for len(all) < innerH {
		all = append(all, "")
	}

	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(all, "\n"))

	// lipgloss Height() only sets a minimum; it won't truncate overflow.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

func renderAlgorithmEntry(a masking.Algorithm, maxW, index int, isCursor, isSelected bool) []string {
	cursor := "  "
	if isCursor {
		cursor = ">>"
	}
	mark := "( )"
	if isSelected {
		mark = "(*)"
	}

	raw1 := fmt.Sprintf("%s %s %d %s", cursor, mark, index+1, a.Name())
	desc := wrapWords(a.Description(), maxW-7)

	if isCursor {
		lines := []string{StyleCursorRow.Render(truncRaw(raw1, maxW))}
		for _, d := range desc {
			lines = append(lines, StyleCursorRow.Render(truncRaw("       "+d, maxW)))
		}
		return append(lines, "")
	}

	markStyled := StyleHelp.Render(mark)
	if isSelected {
		markStyled = StyleSelectedMarker.Render(mark)
	}
	lines := []string{fmt.Sprintf("   %s %d %s", markStyled, index+1, StyleAlgorithmName.Render(a.Name()))}
	for _, d := range desc {
		lines = append(lines, "       "+StyleAlgorithmDesc.Render(d))
	}
	return append(lines, "")
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	if len(r) < w {
		return s + strings.Repeat(" ", w-len(r))
	}
	return s
}

// wrapWords breaks s into lines of at most w characters on word boundaries.
func wrapWords(s string, w int) []string {
	if w < 8 {
		w = 8
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= w:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func paletteString() string {
	buf := make([]rune, 0, masking.PaletteLen()*2)
	for i := 0; i < masking.PaletteLen(); i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, masking.Symbol(i))
	}
	return string(buf)
}
