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

type tasksLoadedMsg struct {
	tasks []domain.Task
	err   error
}

type taskToggledMsg struct{ err error }

// tasksView lists the task list with completion checkboxes.
type tasksView struct {
	state   *SharedState
	loading bool
	err     error
	tasks   []domain.Task
	cursor  int
}

func newTasksView(state *SharedState) *tasksView {
	return &tasksView{state: state, loading: true}
}

func (v *tasksView) ID() ViewID    { return ViewTasks }
func (v *tasksView) Title() string { return "Tasks" }

func (v *tasksView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *tasksView) Init() tea.Cmd {
	return v.loadData()
}

func (v *tasksView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		tasks, err := app.Tasks.List(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (v *tasksView) toggleSelected() tea.Cmd {
	if v.cursor >= len(v.tasks) {
		return nil
	}
	id := v.tasks[v.cursor].ID
	app := v.state.App
	return func() tea.Msg {
		err := app.Tasks.Toggle(context.Background(), id)
		return taskToggledMsg{err: err}
	}
}

func (v *tasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.tasks = msg.tasks
		if v.cursor >= len(v.tasks) {
			v.cursor = max(0, len(v.tasks)-1)
		}
		return v, nil

	case taskToggledMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, func() tea.Msg { return refreshViewMsg{} }

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
			if v.cursor < len(v.tasks)-1 {
				v.cursor++
			}
		case " ", "enter":
			return v, v.toggleSelected()
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *tasksView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.tasks) == 0 {
		return "\n  " + formatter.Dim("No tasks yet. Press 'n' to add one.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, t := range v.tasks {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		check := formatter.Dim("[ ]")
		titleStyle := formatter.StyleFg
		if t.Completed {
			check = formatter.StyleGreen.Render("[✓]")
			titleStyle = formatter.StyleDim.Strikethrough(true)
		}
		if i == v.cursor && !t.Completed {
			titleStyle = formatter.StyleBold
		}

		related := ""
		if t.RelatedTo != "" {
			related = formatter.Dim("· " + t.RelatedTo)
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s %s\n",
			cursor,
			check,
			titleStyle.Render(formatter.PadRight(t.Title, 42)),
			formatter.PadRight(formatter.PriorityPill(t.Priority), 14),
			formatter.Dim(formatter.PadRight(t.DueDate, 10)),
			related,
		))
	}
	return b.String()
}
