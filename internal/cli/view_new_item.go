package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nexuscrm/nexus/internal/cli/formatter"
	"github.com/nexuscrm/nexus/internal/service"
)

const (
	kindDeal = "Deal"
	kindLead = "Lead"
	kindTask = "Task"
)

// newQuickAddModal builds the global quick-add form. The title is
// deliberately left unvalidated in the form itself: the services own
// the blank-title rejection and the modal surfaces it in the status
// line, so every entry path behaves the same.
func newQuickAddModal(state *SharedState) *modalView {
	kind := kindDeal
	var title, value string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you adding?").
				Options(
					huh.NewOption(kindDeal, kindDeal),
					huh.NewOption(kindLead, kindLead),
					huh.NewOption(kindTask, kindTask),
				).
				Value(&kind),
			huh.NewInput().
				Title("Title").
				Placeholder("Deal title, lead name or task").
				Value(&title),
			huh.NewInput().
				Title("Value ($)").
				Description("Deals only, blank or non-numeric means 0").
				Value(&value),
		),
	).WithTheme(nexusHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		k, t, v := kind, title, value
		return func() tea.Msg {
			ctx := context.Background()
			var err error
			switch k {
			case kindDeal:
				_, err = app.Deals.Create(ctx, t, v)
			case kindLead:
				_, err = app.Leads.Create(ctx, t)
			case kindTask:
				_, err = app.Tasks.Create(ctx, t)
			}
			switch {
			case errors.Is(err, service.ErrEmptyTitle):
				return closeModalMsg{status: formatter.StyleRed.Render("A title is required.")}
			case err != nil:
				return closeModalMsg{status: formatter.StyleRed.Render("Error: " + err.Error())}
			}
			return closeModalMsg{status: formatter.StyleGreen.Render(k + " created.")}
		}
	}

	return newModalView(state, "Quick Add", form, done)
}
