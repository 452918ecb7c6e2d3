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

// pipelineLoadedMsg signals that the deal board has been loaded.
type pipelineLoadedMsg struct {
	deals    []domain.Deal
	contacts map[string]domain.Contact
	err      error
}

// dealMovedMsg signals that a stage change has been persisted.
type dealMovedMsg struct{ err error }

// pipelineView shows every deal grouped by stage in canonical pipeline
// order. The cursor walks the flattened board; moving a deal shifts it
// one stage left or right.
type pipelineView struct {
	state   *SharedState
	loading bool
	err     error

	deals    []domain.Deal // flattened in stage order
	contacts map[string]domain.Contact
	cursor   int
}

func newPipelineView(state *SharedState) *pipelineView {
	return &pipelineView{state: state, loading: true}
}

func (v *pipelineView) ID() ViewID    { return ViewPipeline }
func (v *pipelineView) Title() string { return "Pipeline" }

func (v *pipelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "move stage")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *pipelineView) Init() tea.Cmd {
	return v.loadData()
}

func (v *pipelineView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		deals, err := app.Deals.List(ctx)
		if err != nil {
			return pipelineLoadedMsg{err: err}
		}

		// Flatten in canonical stage order so the cursor walks the board
		// column by column.
		ordered := make([]domain.Deal, 0, len(deals))
		for _, stage := range domain.StageOrder {
			for _, d := range deals {
				if d.Stage == stage {
					ordered = append(ordered, d)
				}
			}
		}

		contacts := make(map[string]domain.Contact)
		for _, d := range ordered {
			if _, seen := contacts[d.ContactID]; seen {
				continue
			}
			if c, ok := app.Directory.ContactByID(ctx, d.ContactID); ok {
				contacts[d.ContactID] = c
			}
		}

		return pipelineLoadedMsg{deals: ordered, contacts: contacts}
	}
}

// moveSelected shifts the selected deal one stage along the pipeline.
func (v *pipelineView) moveSelected(offset int) tea.Cmd {
	if v.cursor >= len(v.deals) {
		return nil
	}
	d := v.deals[v.cursor]

	idx := -1
	for i, s := range domain.StageOrder {
		if s == d.Stage {
			idx = i
			break
		}
	}
	target := idx + offset
	if idx < 0 || target < 0 || target >= len(domain.StageOrder) {
		return nil
	}
	stage := domain.StageOrder[target]

	app := v.state.App
	return func() tea.Msg {
		err := app.Deals.ChangeStage(context.Background(), d.ID, stage)
		return dealMovedMsg{err: err}
	}
}

func (v *pipelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pipelineLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.deals = msg.deals
		v.contacts = msg.contacts
		if v.cursor >= len(v.deals) {
			v.cursor = max(0, len(v.deals)-1)
		}
		return v, nil

	case dealMovedMsg:
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
			if v.cursor < len(v.deals)-1 {
				v.cursor++
			}
		case "left", "h":
			return v, v.moveSelected(-1)
		case "right", "l":
			return v, v.moveSelected(1)
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *pipelineView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.deals) == 0 {
		return "\n  " + formatter.Dim("No deals yet. Press 'n' to add one.")
	}

	total := 0
	for _, d := range v.deals {
		total += d.Value
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleGreen.Bold(true).Render(formatter.Money(total)))
	b.WriteString(" " + formatter.Dim(fmt.Sprintf("across %d deals", len(v.deals))) + "\n\n")

	i := 0
	for _, stage := range domain.StageOrder {
		var rows []string
		for ; i < len(v.deals) && v.deals[i].Stage == stage; i++ {
			rows = append(rows, v.renderDeal(i))
		}
		if len(rows) == 0 {
			continue
		}
		b.WriteString(formatter.StageStyle(stage).Bold(true).Render(strings.ToUpper(string(stage))) + "\n")
		for _, row := range rows {
			b.WriteString(row + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *pipelineView) renderDeal(i int) string {
	d := v.deals[i]
	cursor := "  "
	titleStyle := formatter.StyleFg
	if i == v.cursor {
		cursor = formatter.StyleGreen.Render("▸ ")
		titleStyle = formatter.StyleBold
	}

	who := formatter.Dim("—")
	if c, ok := v.contacts[d.ContactID]; ok {
		who = formatter.Dim(c.Name)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		cursor,
		titleStyle.Render(formatter.PadRight(d.Title, 30)),
		formatter.StyleGreen.Render(formatter.PadRight(formatter.Money(d.Value), 10)),
		formatter.RenderProgress(float64(d.Probability)/100, 6),
		who,
	)
}
