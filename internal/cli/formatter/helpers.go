package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Money formats an integer dollar amount with a $ sign and thousands
// separators, e.g. 45000 -> "$45,000".
func Money(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.Itoa(amount)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "$" + strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// PadRight pads s with spaces to width, measured as printed so styled
// strings pad correctly. Plain strings that overflow are truncated;
// styled ones pass through untouched since a runewise cut would split
// the escape sequences.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		if strings.ContainsRune(s, '\x1b') {
			return s
		}
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// InitialsBadge renders a two-letter avatar badge like [SC].
func InitialsBadge(initials string) string {
	if initials == "" {
		initials = "??"
	}
	return StylePurple.Render(fmt.Sprintf("[%s]", initials))
}
