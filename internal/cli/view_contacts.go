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

type contactsLoadedMsg struct {
	contacts []domain.Contact
	err      error
}

// contactsView lists the contact directory.
type contactsView struct {
	state    *SharedState
	loading  bool
	err      error
	contacts []domain.Contact
	cursor   int
}

func newContactsView(state *SharedState) *contactsView {
	return &contactsView{state: state, loading: true}
}

func (v *contactsView) ID() ViewID    { return ViewContacts }
func (v *contactsView) Title() string { return "Contacts" }

func (v *contactsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
	}
}

func (v *contactsView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		contacts, err := app.Directory.Contacts(context.Background())
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

func (v *contactsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.contacts = msg.contacts
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
			if v.cursor < len(v.contacts)-1 {
				v.cursor++
			}
		}
	}

	return v, nil
}

func (v *contactsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, c := range v.contacts {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
			cursor,
			formatter.InitialsBadge(c.Initials()),
			nameStyle.Render(formatter.PadRight(c.Name, 18)),
			formatter.Dim(formatter.PadRight(c.Role, 18)),
			formatter.Dim(c.Company),
		))
		if i == v.cursor {
			b.WriteString(fmt.Sprintf("       %s  %s\n",
				formatter.StyleBlue.Render(c.Email),
				formatter.Dim(c.Phone),
			))
		}
	}
	return b.String()
}
