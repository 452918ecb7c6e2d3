package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexuscrm/nexus/internal/cli/formatter"
	"github.com/nexuscrm/nexus/internal/domain"
)

type leadsLoadedMsg struct {
	leads []domain.Lead
	err   error
}

// leadsView lists every lead with its status, source and tags.
type leadsView struct {
	state   *SharedState
	loading bool
	err     error
	leads   []domain.Lead
	cursor  int
}

func newLeadsView(state *SharedState) *leadsView {
	return &leadsView{state: state, loading: true}
}

func (v *leadsView) ID() ViewID    { return ViewLeads }
func (v *leadsView) Title() string { return "Leads" }

func (v *leadsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *leadsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *leadsView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		leads, err := app.Leads.List(context.Background())
		return leadsLoadedMsg{leads: leads, err: err}
	}
}

func (v *leadsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leadsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.leads = msg.leads
		if v.cursor >= len(v.leads) {
			v.cursor = max(0, len(v.leads)-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.leads)-1 {
				v.cursor++
			}
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *leadsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.leads) == 0 {
		return "\n  " + formatter.Dim("No leads yet. Press 'n' to add one.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, l := range v.leads {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		tags := ""
		if len(l.Tags) > 0 {
			tags = formatter.StylePurple.Render(strings.Join(l.Tags, " "))
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s %s\n",
			cursor,
			nameStyle.Render(formatter.PadRight(l.Contact.Name, 18)),
			formatter.Dim(formatter.PadRight(l.Contact.Company, 16)),
			formatter.PadRight(formatter.LeadStatusPill(l.Status), 24),
			formatter.Dim(formatter.PadRight(l.Source, 9)),
			tags,
		))
	}
	return b.String()
}
