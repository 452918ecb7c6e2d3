package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request transitions.
// The appModel handles these in its Update method.

// navigateMsg switches the active view. Switching always collapses the
// sidebar, whichever view asked for the transition.
type navigateMsg struct {
	to ViewID
}

// openModalMsg overlays a modal form on the active view.
type openModalMsg struct {
	modal *modalView
}

// closeModalMsg dismisses the modal overlay, optionally flashing a
// status line in the bottom bar.
type closeModalMsg struct {
	status string
}

// refreshViewMsg tells the active view to reload its data after a
// mutation elsewhere (modal submits, stage moves, toggles).
type refreshViewMsg struct{}

// navigateTo returns a tea.Cmd that switches the active view.
func navigateTo(id ViewID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: id} }
}

// openModal returns a tea.Cmd that overlays a modal form.
func openModal(m *modalView) tea.Cmd {
	return func() tea.Msg { return openModalMsg{modal: m} }
}

// closeModal returns a tea.Cmd that dismisses the modal overlay.
func closeModal(status string) tea.Cmd {
	return func() tea.Msg { return closeModalMsg{status: status} }
}
