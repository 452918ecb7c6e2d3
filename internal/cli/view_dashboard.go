package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nexuscrm/nexus/internal/cli/formatter"
	"github.com/nexuscrm/nexus/internal/contract"
	"github.com/nexuscrm/nexus/internal/domain"
)

// ── data types ───────────────────────────────────────────────────────────────

// dashboardData holds the loaded data for the dashboard view.
type dashboardData struct {
	snap       *contract.Snapshot
	activities []domain.Activity
	profile    domain.UserProfile
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: stat cards, the weekly performance
// chart, the stage histogram and the recent activity feed.
type dashboardView struct {
	state   *SharedState
	data    *dashboardData
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		snap, err := app.Metrics.Snapshot(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		activities, err := app.Directory.Activities(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		profile, err := app.Profile.Get(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{data: dashboardData{snap: snap, activities: activities, profile: profile}}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.data = &msg.data
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.data == nil {
		return ""
	}

	snap := v.data.snap
	var b strings.Builder

	b.WriteString("\n" + formatter.Bold("Welcome back, "+v.data.profile.FirstName) + "\n")
	b.WriteString(formatter.Dim("Here's what's happening with your pipeline today.") + "\n\n")

	b.WriteString(v.renderStatCards(snap) + "\n\n")

	b.WriteString(formatter.Header("Weekly Performance") + "\n")
	b.WriteString(v.renderWeekly(snap.Weekly) + "\n\n")

	b.WriteString(formatter.Header("Pipeline by Stage") + "\n")
	b.WriteString(v.renderStageHistogram(snap.StageHistogram) + "\n")

	b.WriteString(formatter.Header("Lead Sources") + "\n")
	b.WriteString(v.renderLeadSources(snap.LeadSources) + "\n")

	b.WriteString(formatter.Header("Recent Activity") + "\n")
	b.WriteString(v.renderActivityFeed())

	return b.String()
}

func (v *dashboardView) renderStatCards(snap *contract.Snapshot) string {
	cards := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Pipeline Value", formatter.Money(snap.PipelineValue), formatter.StyleGreen},
		{"Active Leads", fmt.Sprintf("%d", snap.ActiveLeads), formatter.StyleBlue},
		{"Open Tasks", fmt.Sprintf("%d", snap.OpenTasks), formatter.StyleYellow},
		{"Deals Lost", fmt.Sprintf("%d", snap.LostDeals), formatter.StyleRed},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := c.style.Bold(true).Render(c.value) + "\n" + formatter.Dim(c.label)
		rendered = append(rendered, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 2).
			Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (v *dashboardView) renderWeekly(weekly []contract.WeeklyPoint) string {
	current := make([]int, 0, len(weekly))
	previous := make([]int, 0, len(weekly))
	days := make([]string, 0, len(weekly))
	for _, p := range weekly {
		current = append(current, p.Current)
		previous = append(previous, p.Previous)
		days = append(days, p.Day)
	}

	var b strings.Builder
	b.WriteString("  " + formatter.Dim("now ") + formatter.StyleGreen.Render(formatter.Sparkline(current)) + "\n")
	b.WriteString("  " + formatter.Dim("prev") + " " + formatter.Dim(formatter.Sparkline(previous)) + "\n")
	b.WriteString("       " + formatter.Dim(strings.Join(firstLetters(days), "")))
	return b.String()
}

func firstLetters(days []string) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if d == "" {
			continue
		}
		out = append(out, d[:1])
	}
	return out
}

func (v *dashboardView) renderStageHistogram(hist []contract.StageCount) string {
	maxCount := 0
	for _, sc := range hist {
		if sc.Count > maxCount {
			maxCount = sc.Count
		}
	}

	var b strings.Builder
	for _, sc := range hist {
		b.WriteString("  " + formatter.BarRow(sc.Label, sc.Count, maxCount, 20, formatter.StageStyle(sc.Stage)) + "\n")
	}
	return b.String()
}

func (v *dashboardView) renderLeadSources(sources []contract.SourceCount) string {
	if len(sources) == 0 {
		return "  " + formatter.Dim("No charted leads yet.")
	}

	maxCount := 0
	for _, sc := range sources {
		if sc.Count > maxCount {
			maxCount = sc.Count
		}
	}

	var b strings.Builder
	for _, sc := range sources {
		b.WriteString("  " + formatter.BarRow(sc.Source, sc.Count, maxCount, 14, formatter.StylePurple) + "\n")
	}
	return b.String()
}

func (v *dashboardView) renderActivityFeed() string {
	if len(v.data.activities) == 0 {
		return "  " + formatter.Dim("No recent activity.")
	}

	var b strings.Builder
	for _, a := range v.data.activities {
		icon := formatter.Dim("·")
		switch a.Type {
		case domain.ActivityCall:
			icon = formatter.StyleGreen.Render("✆")
		case domain.ActivityEmail:
			icon = formatter.StyleBlue.Render("✉")
		case domain.ActivityNote:
			icon = formatter.StyleYellow.Render("✎")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			icon,
			formatter.PadRight(a.Description, 48),
			formatter.Dim(a.Date),
		))
	}
	return b.String()
}
