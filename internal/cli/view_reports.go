package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexuscrm/nexus/internal/cli/formatter"
	"github.com/nexuscrm/nexus/internal/contract"
)

// revenueTarget is the demo revenue goal the gauge measures against.
const revenueTarget = 320000

type reportsLoadedMsg struct {
	snap *contract.Snapshot
	err  error
}

// reportsView shows the conversion funnel, lead source breakdown and
// the revenue goal gauge.
type reportsView struct {
	state   *SharedState
	loading bool
	err     error
	snap    *contract.Snapshot
}

func newReportsView(state *SharedState) *reportsView {
	return &reportsView{state: state, loading: true}
}

func (v *reportsView) ID() ViewID    { return ViewReports }
func (v *reportsView) Title() string { return "Reports" }

func (v *reportsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *reportsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *reportsView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		snap, err := app.Metrics.Snapshot(context.Background())
		return reportsLoadedMsg{snap: snap, err: err}
	}
}

func (v *reportsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.snap = msg.snap
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

func (v *reportsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.snap == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Conversion Funnel") + "\n")
	b.WriteString(v.renderFunnel() + "\n")

	b.WriteString(formatter.Header("Lead Sources") + "\n")
	b.WriteString(v.renderSources() + "\n")

	b.WriteString(formatter.Header("Revenue Goals") + "\n")
	b.WriteString("  " + formatter.Gauge(v.snap.PipelineValue, revenueTarget, 20) + "\n")

	return b.String()
}

func (v *reportsView) renderFunnel() string {
	maxCount := 0
	for _, step := range v.snap.Funnel {
		if step.Count > maxCount {
			maxCount = step.Count
		}
	}

	var b strings.Builder
	for _, step := range v.snap.Funnel {
		b.WriteString("  " + formatter.FunnelRow(step.Name, step.Count, maxCount, 24) + "\n")
	}
	return b.String()
}

func (v *reportsView) renderSources() string {
	if len(v.snap.LeadSources) == 0 {
		return "  " + formatter.Dim("No charted leads yet.")
	}

	maxCount := 0
	for _, sc := range v.snap.LeadSources {
		if sc.Count > maxCount {
			maxCount = sc.Count
		}
	}

	var b strings.Builder
	for _, sc := range v.snap.LeadSources {
		b.WriteString("  " + formatter.BarRow(sc.Source, sc.Count, maxCount, 18, formatter.StyleBlue) + "\n")
	}
	return b.String()
}
