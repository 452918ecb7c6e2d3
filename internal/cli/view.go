package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each workspace view. The set is closed: navigation
// only ever targets one of these, and exactly one is active at a time.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewPipeline
	ViewLeads
	ViewContacts
	ViewCompanies
	ViewTasks
	ViewDocuments
	ViewReports
	ViewAssistant
	ViewSettings
)

// viewOrder fixes the sidebar ordering and the digit shortcuts.
var viewOrder = []ViewID{
	ViewDashboard,
	ViewPipeline,
	ViewLeads,
	ViewContacts,
	ViewCompanies,
	ViewTasks,
	ViewDocuments,
	ViewReports,
	ViewAssistant,
	ViewSettings,
}

// View is the interface that all workspace views implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // sidebar and header label for this view
}
