package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nexuscrm/nexus/internal/cli/formatter"
	"github.com/nexuscrm/nexus/internal/contract"
)

// appModel is the root bubbletea Model for the TUI. Exactly one view is
// active at a time; transitions swap the active ID over a fixed set of
// cached views, and a modal form can overlay whichever view is showing.
type appModel struct {
	state    *SharedState
	active   ViewID
	views    map[ViewID]View
	modal    *modalView
	quitting bool

	// Transient status line shown in the bottom bar after modal actions.
	status string

	// Cached metrics for the sidebar badges.
	badges *contract.Snapshot
}

// badgesLoadedMsg delivers the metrics snapshot for the sidebar.
type badgesLoadedMsg struct {
	snap *contract.Snapshot
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	views := map[ViewID]View{
		ViewDashboard: newDashboardView(state),
		ViewPipeline:  newPipelineView(state),
		ViewLeads:     newLeadsView(state),
		ViewContacts:  newContactsView(state),
		ViewCompanies: newCompaniesView(state),
		ViewTasks:     newTasksView(state),
		ViewDocuments: newDocumentsView(state),
		ViewReports:   newReportsView(state),
		ViewAssistant: newAssistantView(state),
		ViewSettings:  newSettingsView(state),
	}

	return appModel{
		state:  state,
		active: ViewDashboard,
		views:  views,
	}
}

func (m *appModel) activeView() View {
	return m.views[m.active]
}

func (m *appModel) loadBadges() tea.Cmd {
	app := m.state.App
	return func() tea.Msg {
		snap, err := app.Metrics.Snapshot(context.Background())
		if err != nil {
			return badgesLoadedMsg{}
		}
		return badgesLoadedMsg{snap: snap}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.activeView().Init(), m.loadBadges())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forwardToActive(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		if !m.setActive(msg.to) {
			return m, nil
		}
		return m, tea.Batch(m.activeView().Init(), m.loadBadges())

	case openModalMsg:
		m.modal = msg.modal
		m.status = ""
		return m, m.modal.Init()

	case closeModalMsg:
		m.modal = nil
		m.status = msg.status
		// Reload the view underneath and the sidebar badges so a modal
		// mutation shows up immediately.
		_, cmd := m.forwardToActive(refreshViewMsg{})
		return m, tea.Batch(cmd, m.loadBadges())

	case refreshViewMsg:
		_, cmd := m.forwardToActive(msg)
		return m, tea.Batch(cmd, m.loadBadges())

	case badgesLoadedMsg:
		m.badges = msg.snap
		return m, nil
	}

	// Forward everything else (loaded-data messages, blink ticks) to the
	// modal when open, otherwise to the active view.
	if m.modal != nil {
		updated, cmd := m.modal.Update(msg)
		m.modal = updated.(*modalView)
		return m, cmd
	}
	return m.forwardToActive(msg)
}

// setActive switches the active view and collapses the sidebar. Returns
// false when already on the target, in which case nothing changes.
func (m *appModel) setActive(to ViewID) bool {
	if _, ok := m.views[to]; !ok || to == m.active {
		return false
	}
	m.active = to
	m.state.SidebarOpen = false
	m.status = ""
	return true
}

func (m appModel) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	updated, cmd := v.Update(msg)
	m.views[m.active] = updated.(View)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A modal captures all input while open. Escape is handled inside
	// the modal and comes back as a closeModalMsg.
	if m.modal != nil {
		updated, cmd := m.modal.Update(msg)
		m.modal = updated.(*modalView)
		return m, cmd
	}

	// If the active view captures text input, forward everything so
	// typing 'q' or 'n' into a field works.
	if viewCapturesInput(m.activeView()) {
		return m.forwardToActive(msg)
	}

	switch s := msg.String(); s {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "n":
		return m, openModal(newQuickAddModal(m.state))

	case "m":
		m.state.SidebarOpen = !m.state.SidebarOpen
		return m, nil

	case "tab":
		return m, navigateTo(m.neighborView(1))

	case "shift+tab":
		return m, navigateTo(m.neighborView(-1))

	default:
		if id, ok := digitView(s); ok {
			return m, navigateTo(id)
		}
	}

	if msg.Type == tea.KeyEsc {
		m.status = ""
		return m, nil
	}

	return m.forwardToActive(msg)
}

// neighborView returns the view offset steps away in sidebar order.
func (m *appModel) neighborView(offset int) ViewID {
	idx := 0
	for i, id := range viewOrder {
		if id == m.active {
			idx = i
			break
		}
	}
	idx = (idx + offset + len(viewOrder)) % len(viewOrder)
	return viewOrder[idx]
}

// digitView maps the keys 1-9 and 0 onto the sidebar order.
func digitView(s string) (ViewID, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	idx := int(s[0] - '1')
	if s[0] == '0' {
		idx = 9
	}
	if idx < 0 || idx >= len(viewOrder) {
		return 0, false
	}
	return viewOrder[idx], true
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	content := m.activeView().View()
	if m.modal != nil {
		content = "\n" + m.modal.View()
	}

	sidebar := m.renderSidebar()
	contentWidth := m.state.Width - lipgloss.Width(sidebar) - 3
	if contentWidth < 20 {
		contentWidth = 20
	}
	divider := lipgloss.NewStyle().
		Foreground(formatter.ColorDim).
		Render("│")
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sidebar,
		" "+divider+" ",
		lipgloss.NewStyle().Width(contentWidth).Render(content),
	)
	sections = append(sections, body)

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("nexus")
	crumb := " " + formatter.Dim("›") + " " + formatter.Dim(m.activeView().Title())
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + crumb + "\n" + sep
}

// renderSidebar draws the navigation rail. Collapsed it shows digit
// shortcuts and abbreviated labels; open it shows full labels plus
// live badge counts.
func (m *appModel) renderSidebar() string {
	var b strings.Builder
	for i, id := range viewOrder {
		digit := byte('1') + byte(i)
		if i == 9 {
			digit = '0'
		}

		label := m.views[id].Title()
		if !m.state.SidebarOpen {
			label = formatter.Truncate(label, 4)
		}

		line := fmt.Sprintf("%c %s", digit, formatter.PadRight(label, m.sidebarLabelWidth()))
		if badge := m.badgeFor(id); badge != "" && m.state.SidebarOpen {
			line += " " + badge
		}

		if id == m.active {
			b.WriteString(formatter.StyleHeader.Render("▸ " + line))
		} else {
			b.WriteString(formatter.Dim("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *appModel) sidebarLabelWidth() int {
	if m.state.SidebarOpen {
		return 10
	}
	return 4
}

// badgeFor returns the live count badge for a sidebar entry, if any.
func (m *appModel) badgeFor(id ViewID) string {
	if m.badges == nil {
		return ""
	}
	switch id {
	case ViewPipeline:
		return formatter.StyleBlue.Render(fmt.Sprintf("%d", m.badges.TotalDeals))
	case ViewLeads:
		return formatter.StyleGreen.Render(fmt.Sprintf("%d", m.badges.ActiveLeads))
	case ViewTasks:
		return formatter.StyleYellow.Render(fmt.Sprintf("%d", m.badges.OpenTasks))
	}
	return ""
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.status != "" {
		hints = append(hints, m.status)
	}

	helpSource := View(nil)
	if m.modal != nil {
		for _, b := range m.modal.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	} else {
		helpSource = m.activeView()
	}
	if helpSource != nil {
		for _, b := range helpSource.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		hints = append(hints,
			formatter.Dim("1-0: views"),
			formatter.Dim("n: new"),
			formatter.Dim("m: menu"),
			formatter.Dim("q: quit"),
		)
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view has its own text
// input and should receive all key events, bypassing global shortcuts.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if c, ok := v.(interface{ capturesInput() bool }); ok {
		return c.capturesInput()
	}
	return false
}
