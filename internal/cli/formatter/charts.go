package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarRow renders one labeled row of a horizontal bar chart. maxCount
// scales the bar; a zero max renders an empty bar.
func BarRow(label string, count, maxCount, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if maxCount > 0 {
		filled = count * width / maxCount
	}
	if count > 0 && filled == 0 {
		filled = 1
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("%s %s %s", Dim(PadRight(label, 8)), style.Render(bar), Bold(fmt.Sprintf("%d", count)))
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a single-line spark chart, scaled to the
// series maximum.
func Sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	maxV := 0
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if maxV > 0 {
			idx = v * (len(sparkRunes) - 1) / maxV
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// FunnelRow renders one step of a conversion funnel, scaled so the
// widest step fills width.
func FunnelRow(name string, count, maxCount, width int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if maxCount > 0 {
		filled = count * width / maxCount
	}
	if count > 0 && filled == 0 {
		filled = 1
	}
	bar := StyleBlue.Render(strings.Repeat(filledBlock, filled))
	return fmt.Sprintf("%s %s %s", Dim(PadRight(name, 10)), bar, Bold(fmt.Sprintf("%d", count)))
}

// Gauge renders an achievement gauge like ▐████░░░░▌ 75% of $320,000.
func Gauge(current, target int, width int) string {
	pct := 0.0
	if target > 0 {
		pct = float64(current) / float64(target)
	}
	capped := pct
	if capped > 1 {
		capped = 1
	}
	return fmt.Sprintf("%s %s of %s",
		RenderProgress(capped, width),
		Bold(Money(current)),
		Dim(Money(target)))
}
