package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuscrm/nexus/internal/domain"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{900, "$900"},
		{45000, "$45,000"},
		{240500, "$240,500"},
		{1234567, "$1,234,567"},
		{-12000, "-$12,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "TechFlow", Truncate("TechFlow", 16))
	assert.Equal(t, "TechFlow Platfo…", Truncate("TechFlow Platform Renewal", 16))
	assert.Equal(t, "…", Truncate("long", 1))
	assert.Equal(t, "", Truncate("long", 0))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc   ", PadRight("abc", 6))
	assert.Equal(t, "abcde…", PadRight("abcdefgh", 6))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))

	line := Sparkline([]int{0, 10, 20, 40})
	runes := []rune(line)
	assert.Len(t, runes, 4)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[3])
}

func TestBarRowScalesToMax(t *testing.T) {
	full := BarRow("Disc", 4, 4, 8, StyleBlue)
	assert.Equal(t, 8, strings.Count(full, filledBlock))

	empty := BarRow("Disc", 0, 4, 8, StyleBlue)
	assert.Equal(t, 0, strings.Count(empty, filledBlock))
	assert.Equal(t, 8, strings.Count(empty, emptyBlock))

	// Nonzero counts always show at least one block.
	sliver := BarRow("Disc", 1, 100, 8, StyleBlue)
	assert.Equal(t, 1, strings.Count(sliver, filledBlock))
}

func TestGaugeCapsAtFull(t *testing.T) {
	over := Gauge(400000, 320000, 10)
	assert.Contains(t, over, "100%")
	assert.Contains(t, over, "$400,000")
	assert.Contains(t, over, "$320,000")
}

func TestRenderProgressClamps(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 8), "  0%")
	assert.Contains(t, RenderProgress(1.5, 8), "100%")
}

func TestLeadStatusPillCoversAllStatuses(t *testing.T) {
	for _, s := range []domain.LeadStatus{
		domain.LeadNew, domain.LeadContacted, domain.LeadQualified, domain.LeadUnqualified,
	} {
		assert.Contains(t, LeadStatusPill(s), string(s))
	}
}
