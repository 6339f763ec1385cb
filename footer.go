package furrow

import (
	"strings"

	"charm.land/lipgloss/v2"

	"furrow/style"
)

// RenderFooter renders a footer line with left and right text spread across width.
func RenderFooter(left, right string, width int) string {

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.TableBorderStyle.Render(left + strings.Repeat(" ", padding) + right)
}
