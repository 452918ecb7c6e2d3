package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nexuscrm/nexus/internal/assistant"
	"github.com/nexuscrm/nexus/internal/service"
)

// App holds references to all service interfaces used by the TUI.
type App struct {
	Deals     service.DealService
	Leads     service.LeadService
	Tasks     service.TaskService
	Directory service.DirectoryService
	Profile   service.ProfileService
	Metrics   service.MetricsService
	Assistant assistant.Service
}

// NewRootCmd creates the top-level "nexus" command. Running it without
// a subcommand launches the workspace TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "nexus",
		Short: "CRM workspace in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return fmt.Errorf("nexus needs an interactive terminal")
			}
			return RunTUI(app)
		},
	}
	return root
}

// RunTUI starts the bubbletea program in alt-screen mode and blocks
// until the user quits.
func RunTUI(app *App) error {
	m := newAppModel(app)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
