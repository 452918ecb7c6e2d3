package cli

import (
	"testing"
	"time"

	"github.com/nexuscrm/nexus/internal/assistant"
	"github.com/nexuscrm/nexus/internal/repository"
	"github.com/nexuscrm/nexus/internal/service"
	"github.com/nexuscrm/nexus/internal/teatest"
)

// TestDriver wraps teatest.Driver with workspace-specific inspection
// methods. It provides access to appModel internals (active view, modal,
// shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// newTestApp wires an App against freshly seeded in-memory repositories
// and the demo assistant with a near-zero delay.
func newTestApp(t *testing.T) *App {
	t.Helper()
	now := time.Now()

	dealRepo := repository.NewMemoryDealRepo(repository.SeedDeals(now))
	leadRepo := repository.NewMemoryLeadRepo(repository.SeedLeads(now))
	taskRepo := repository.NewMemoryTaskRepo(repository.SeedTasks())
	contactRepo := repository.NewMemoryContactRepo(repository.SeedContacts())
	companyRepo := repository.NewMemoryCompanyRepo(repository.SeedCompanies())
	activityRepo := repository.NewMemoryActivityRepo(repository.SeedActivities())
	documentRepo := repository.NewMemoryDocumentRepo(repository.SeedDocuments())
	profileRepo := repository.NewMemoryProfileRepo(repository.SeedProfile())

	return &App{
		Deals:     service.NewDealService(dealRepo),
		Leads:     service.NewLeadService(leadRepo, contactRepo),
		Tasks:     service.NewTaskService(taskRepo),
		Directory: service.NewDirectoryService(contactRepo, companyRepo, activityRepo, documentRepo),
		Profile:   service.NewProfileService(profileRepo),
		Metrics:   service.NewMetricsService(dealRepo, leadRepo, taskRepo),
		Assistant: assistant.NewDemoWithDelay(time.Millisecond),
	}
}

// NewTestDriver creates a TestDriver from a test App. It constructs the
// appModel, sets terminal size, and drains Init() (which loads the
// dashboard synchronously against the in-memory services).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── workspace-specific inspection ────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ID of the currently active view.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().active
}

// ActiveViewTitle returns the Title() of the currently active view.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	return m.activeView().Title()
}

// ModalOpen reports whether a modal form is overlaying the view.
func (d *TestDriver) ModalOpen() bool {
	return d.appModel().modal != nil
}

// Status returns the transient status line shown in the bottom bar.
func (d *TestDriver) Status() string {
	return d.appModel().status
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit. Checks both
// model.quitting (q/Ctrl+C) and the driver's Quitting flag (tea.QuitMsg).
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
