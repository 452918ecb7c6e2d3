package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nexuscrm/nexus/internal/cli/formatter"
	"github.com/nexuscrm/nexus/internal/domain"
)

type profileLoadedMsg struct {
	profile domain.UserProfile
	err     error
}

// settingsFields fixes the editing order of the profile form.
var settingsFields = []struct {
	field domain.ProfileField
	label string
}{
	{domain.FieldFirstName, "First name"},
	{domain.FieldLastName, "Last name"},
	{domain.FieldEmail, "Email"},
}

// settingsView shows the account profile and edits one field at a time
// through a modal input.
type settingsView struct {
	state   *SharedState
	loading bool
	err     error
	profile domain.UserProfile
	cursor  int
}

func newSettingsView(state *SharedState) *settingsView {
	return &settingsView{state: state, loading: true}
}

func (v *settingsView) ID() ViewID    { return ViewSettings }
func (v *settingsView) Title() string { return "Settings" }

func (v *settingsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
	}
}

func (v *settingsView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		profile, err := app.Profile.Get(context.Background())
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (v *settingsView) fieldValue(field domain.ProfileField) string {
	switch field {
	case domain.FieldFirstName:
		return v.profile.FirstName
	case domain.FieldLastName:
		return v.profile.LastName
	case domain.FieldEmail:
		return v.profile.Email
	}
	return ""
}

// editSelected opens a single-input modal preloaded with the current
// field value.
func (v *settingsView) editSelected() tea.Cmd {
	entry := settingsFields[v.cursor]
	value := v.fieldValue(entry.field)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(entry.label).
				Value(&value),
		),
	).WithTheme(nexusHuhTheme()).WithShowHelp(false)

	app := v.state.App
	done := func() tea.Cmd {
		field, val := entry.field, value
		return func() tea.Msg {
			if err := app.Profile.Update(context.Background(), field, val); err != nil {
				return closeModalMsg{status: formatter.StyleRed.Render("Error: " + err.Error())}
			}
			return closeModalMsg{status: formatter.StyleGreen.Render("Profile updated.")}
		}
	}

	return openModal(newModalView(v.state, "Edit "+entry.label, form, done))
}

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.profile = msg.profile
		return v, nil

	case refreshViewMsg:
		return v, v.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(settingsFields)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.editSelected()
		}
	}

	return v, nil
}

func (v *settingsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Profile") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		formatter.InitialsBadge(v.profile.Initials()),
		formatter.Bold(v.profile.FirstName+" "+v.profile.LastName),
	))

	for i, entry := range settingsFields {
		cursor := "  "
		valStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			valStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			formatter.Dim(formatter.PadRight(entry.label, 12)),
			valStyle.Render(v.fieldValue(entry.field)),
		))
	}

	b.WriteString("\n  " + formatter.Dim("Changes live in memory only and reset on restart."))
	return b.String()
}
