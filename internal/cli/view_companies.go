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

type companiesLoadedMsg struct {
	companies []domain.Company
	err       error
}

// companiesView lists the company directory.
type companiesView struct {
	state     *SharedState
	loading   bool
	err       error
	companies []domain.Company
	cursor    int
}

func newCompaniesView(state *SharedState) *companiesView {
	return &companiesView{state: state, loading: true}
}

func (v *companiesView) ID() ViewID    { return ViewCompanies }
func (v *companiesView) Title() string { return "Companies" }

func (v *companiesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
	}
}

func (v *companiesView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		companies, err := app.Directory.Companies(context.Background())
		return companiesLoadedMsg{companies: companies, err: err}
	}
}

func (v *companiesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case companiesLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.companies = msg.companies
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.companies)-1 {
				v.cursor++
			}
		}
	}

	return v, nil
}

func (v *companiesView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, c := range v.companies {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
			cursor,
			nameStyle.Render(formatter.PadRight(c.Name, 14)),
			formatter.Dim(formatter.PadRight(c.Industry, 16)),
			formatter.Dim(formatter.PadRight(c.Location, 20)),
			formatter.StyleBlue.Render(c.Website),
		))
		if i == v.cursor {
			b.WriteString("    " + formatter.Dim(c.Employees+" employees") + "\n")
		}
	}
	return b.String()
}
