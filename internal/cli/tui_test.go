package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscrm/nexus/internal/domain"
)

func TestStartsOnDashboard(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	view := d.View()
	assert.Contains(t, view, "Welcome back, Matthew")
	assert.Contains(t, view, "Pipeline Value")
	assert.Contains(t, view, "$240,500")
	assert.Contains(t, view, "WEEKLY PERFORMANCE")
	assert.Contains(t, view, "RECENT ACTIVITY")
}

func TestDigitNavigation(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('3')
	assert.Equal(t, ViewLeads, d.ActiveViewID())
	assert.Contains(t, d.View(), "Tom Osei")

	d.PressKey('8')
	assert.Equal(t, ViewReports, d.ActiveViewID())

	d.PressKey('0')
	assert.Equal(t, ViewSettings, d.ActiveViewID())

	d.PressKey('1')
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTabCyclesViews(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressTab()
	assert.Equal(t, ViewPipeline, d.ActiveViewID())

	d.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	d.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, ViewSettings, d.ActiveViewID(), "shift+tab wraps past the first view")
}

func TestNavigationCollapsesSidebar(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('m')
	require.True(t, d.State().SidebarOpen)

	d.PressKey('3')
	assert.False(t, d.State().SidebarOpen, "any view transition collapses the sidebar")
}

func TestOnlyActiveViewIsRendered(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('3')
	view := d.View()
	assert.Contains(t, view, "Tom Osei")
	assert.NotContains(t, view, "PIPELINE BY STAGE", "dashboard content must not bleed into other views")
	assert.NotContains(t, view, "CONVERSION FUNNEL")
}

func TestViewSwitchingDoesNotMutateState(t *testing.T) {
	app := newTestApp(t)
	d := NewTestDriver(t, app)

	before, err := app.Metrics.Snapshot(context.Background())
	require.NoError(t, err)

	for _, digit := range "2345678901" {
		d.PressKey(digit)
	}

	after, err := app.Metrics.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Same(t, before, after, "navigation alone must not invalidate the metrics snapshot")
}

func TestQuickAddModalCancel(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('n')
	require.True(t, d.ModalOpen())
	assert.Contains(t, d.View(), "QUICK ADD")

	d.PressEsc()
	assert.False(t, d.ModalOpen())
	assert.Contains(t, d.Status(), "Cancelled")
}

func TestQuickAddRejectsBlankTitle(t *testing.T) {
	app := newTestApp(t)
	d := NewTestDriver(t, app)

	before, err := app.Deals.List(context.Background())
	require.NoError(t, err)

	d.PressKey('n')
	require.True(t, d.ModalOpen())
	// Accept the default kind, leave title and value blank, submit.
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()

	assert.False(t, d.ModalOpen())
	assert.Contains(t, d.Status(), "title is required")

	after, err := app.Deals.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, after, len(before), "rejected submit must not append a deal")
}

func TestQuickAddCreatesDeal(t *testing.T) {
	app := newTestApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('n')
	d.PressEnter() // kind: Deal
	d.Type("Meridian Labs Pilot")
	d.PressEnter()
	d.Type("25000")
	d.PressEnter()

	assert.False(t, d.ModalOpen())
	assert.Contains(t, d.Status(), "Deal created")

	deals, err := app.Deals.List(context.Background())
	require.NoError(t, err)
	last := deals[len(deals)-1]
	assert.Equal(t, "Meridian Labs Pilot", last.Title)
	assert.Equal(t, 25000, last.Value)
	assert.Equal(t, domain.StageDiscovery, last.Stage)
}

func TestTaskToggleFromView(t *testing.T) {
	app := newTestApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('6')
	require.Equal(t, ViewTasks, d.ActiveViewID())

	d.PressKey(' ')

	tasks, err := app.Tasks.List(context.Background())
	require.NoError(t, err)
	assert.True(t, tasks[0].Completed, "space toggles the selected task")
	assert.Contains(t, d.View(), "[✓]")
}

func TestPipelineStageMove(t *testing.T) {
	app := newTestApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('2')
	require.Equal(t, ViewPipeline, d.ActiveViewID())

	// The board is flattened in stage order, so the first row is the
	// seeded Discovery deal.
	d.PressRight()

	deals, err := app.Deals.List(context.Background())
	require.NoError(t, err)
	for _, deal := range deals {
		if deal.ID == "d4" {
			assert.Equal(t, domain.StageQualification, deal.Stage)
			return
		}
	}
	t.Fatal("deal d4 missing")
}

func TestPipelineStageMoveStopsAtEnds(t *testing.T) {
	app := newTestApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('2')
	d.PressLeft() // first row is already in the first stage

	deals, err := app.Deals.List(context.Background())
	require.NoError(t, err)
	for _, deal := range deals {
		if deal.ID == "d4" {
			assert.Equal(t, domain.StageDiscovery, deal.Stage)
			return
		}
	}
	t.Fatal("deal d4 missing")
}

func TestSettingsProfileEdit(t *testing.T) {
	app := newTestApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('0')
	require.Equal(t, ViewSettings, d.ActiveViewID())
	assert.Contains(t, d.View(), "Matthew")

	d.PressEnter()
	require.True(t, d.ModalOpen())
	d.PressEnter()

	assert.False(t, d.ModalOpen())
	assert.Contains(t, d.Status(), "Profile updated")

	profile, err := app.Profile.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Matthew", profile.FirstName)
}

func TestAssistantNextActionDemo(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('9')
	require.Equal(t, ViewAssistant, d.ActiveViewID())
	assert.Contains(t, d.View(), "Draft Email")

	d.PressDown()
	d.PressDown()
	d.PressEnter() // open the deal picker
	d.PressEnter() // accept the first deal

	view := d.View()
	assert.Contains(t, view, "[DEMO MODE")
	assert.Contains(t, view, "follow-up call")
}

func TestQuitKeys(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())

	d2 := NewTestDriver(t, newTestApp(t))
	d2.PressCtrlC()
	assert.True(t, d2.IsQuitting())
}
