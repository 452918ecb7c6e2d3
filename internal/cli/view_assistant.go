package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nexuscrm/nexus/internal/assistant"
	"github.com/nexuscrm/nexus/internal/cli/formatter"
	"github.com/nexuscrm/nexus/internal/domain"
)

// The AI studio runs one of three generators. Everything the assistant
// returns is displayable text, so the result phase just prints it.

type assistantMode int

const (
	modeEmail assistantMode = iota
	modeSummarize
	modeNextAction
)

var assistantModes = []struct {
	mode  assistantMode
	label string
	blurb string
}{
	{modeEmail, "Draft Email", "Write an outreach email in a chosen tone"},
	{modeSummarize, "Summarize Notes", "Condense meeting notes into bullet points"},
	{modeNextAction, "Next Best Action", "Coaching suggestion for a selected deal"},
}

type assistantPhase int

const (
	phasePick assistantPhase = iota
	phaseForm
	phaseRunning
	phaseResult
)

// assistantResultMsg delivers generated text back to the view.
type assistantResultMsg struct {
	text string
}

type assistantView struct {
	state  *SharedState
	phase  assistantPhase
	mode   assistantMode
	cursor int
	form   *huh.Form

	// Form values, reused across runs.
	contactName string
	topic       string
	tone        string
	notes       string
	dealID      string

	result string
}

func newAssistantView(state *SharedState) *assistantView {
	return &assistantView{state: state, tone: string(assistant.ToneProfessional)}
}

func (v *assistantView) ID() ViewID    { return ViewAssistant }
func (v *assistantView) Title() string { return "AI Studio" }

func (v *assistantView) ShortHelp() []key.Binding {
	switch v.phase {
	case phaseForm:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		}
	case phaseResult:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "again")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		}
	}
}

// capturesInput reports whether all keys should reach the embedded form.
func (v *assistantView) capturesInput() bool {
	return v.phase == phaseForm
}

func (v *assistantView) Init() tea.Cmd {
	return nil
}

// ── form building ────────────────────────────────────────────────────────────

func (v *assistantView) buildForm() *huh.Form {
	switch v.mode {
	case modeEmail:
		toneOptions := make([]huh.Option[string], 0, len(assistant.Tones))
		for _, t := range assistant.Tones {
			toneOptions = append(toneOptions, huh.NewOption(string(t), string(t)))
		}
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("To").Placeholder("Contact name").Value(&v.contactName),
				huh.NewInput().Title("Regarding").Placeholder("What is this about?").Value(&v.topic),
				huh.NewSelect[string]().Title("Tone").Options(toneOptions...).Value(&v.tone),
			),
		).WithTheme(nexusHuhTheme()).WithShowHelp(false)

	case modeSummarize:
		return huh.NewForm(
			huh.NewGroup(
				huh.NewText().Title("Notes").Placeholder("Paste meeting notes here").Value(&v.notes),
			),
		).WithTheme(nexusHuhTheme()).WithShowHelp(false)

	case modeNextAction:
		deals, err := v.state.App.Deals.List(context.Background())
		if err != nil || len(deals) == 0 {
			return nil
		}
		options := make([]huh.Option[string], 0, len(deals))
		for _, d := range deals {
			label := fmt.Sprintf("%s — %s (%s)", d.Title, formatter.Money(d.Value), d.Stage)
			options = append(options, huh.NewOption(label, d.ID))
		}
		return huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().Title("Which deal?").Options(options...).Value(&v.dealID),
			),
		).WithTheme(nexusHuhTheme()).WithShowHelp(false)
	}
	return nil
}

// generate runs the selected assistant task off the Update loop.
func (v *assistantView) generate() tea.Cmd {
	app := v.state.App
	mode := v.mode
	contactName, topic, tone := v.contactName, v.topic, assistant.Tone(v.tone)
	notes, dealID := v.notes, v.dealID

	return func() tea.Msg {
		ctx := context.Background()
		var text string
		switch mode {
		case modeEmail:
			text = app.Assistant.DraftEmail(ctx, contactName, topic, tone)
		case modeSummarize:
			text = app.Assistant.SummarizeNotes(ctx, notes)
		case modeNextAction:
			deals, err := app.Deals.List(ctx)
			if err != nil {
				return assistantResultMsg{text: "Error: " + err.Error()}
			}
			var deal domain.Deal
			for _, d := range deals {
				if d.ID == dealID {
					deal = d
					break
				}
			}
			var contact *domain.Contact
			if c, ok := app.Directory.ContactByID(ctx, deal.ContactID); ok {
				contact = &c
			}
			text = app.Assistant.SuggestNextAction(ctx, deal, contact)
		}
		return assistantResultMsg{text: text}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *assistantView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assistantResultMsg:
		v.phase = phaseResult
		v.result = msg.text
		return v, nil

	case refreshViewMsg:
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if v.phase == phaseForm && v.form != nil {
		return v.updateForm(msg)
	}
	return v, nil
}

func (v *assistantView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch v.phase {
	case phasePick:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(assistantModes)-1 {
				v.cursor++
			}
		case "enter":
			v.mode = assistantModes[v.cursor].mode
			v.form = v.buildForm()
			if v.form == nil {
				v.result = formatter.Dim("Nothing to work with yet. Add a deal first.")
				v.phase = phaseResult
				return v, nil
			}
			v.phase = phaseForm
			return v, v.form.Init()
		}
		return v, nil

	case phaseForm:
		if msg.Type == tea.KeyEsc {
			v.phase = phasePick
			v.form = nil
			return v, nil
		}
		return v.updateForm(msg)

	case phaseRunning:
		return v, nil

	case phaseResult:
		switch {
		case msg.Type == tea.KeyEsc:
			v.phase = phasePick
			v.result = ""
		case msg.Type == tea.KeyEnter:
			v.form = v.buildForm()
			if v.form != nil {
				v.phase = phaseForm
				return v, v.form.Init()
			}
		}
		return v, nil
	}
	return v, nil
}

func (v *assistantView) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		v.phase = phaseRunning
		return v, tea.Batch(cmd, v.generate())
	}
	return v, cmd
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *assistantView) View() string {
	var b strings.Builder
	b.WriteString("\n" + formatter.Header("AI Studio") + "\n")

	switch v.phase {
	case phasePick:
		for i, m := range assistantModes {
			cursor := "  "
			style := formatter.StyleFg
			if i == v.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
				style = formatter.StyleBold
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n",
				cursor,
				style.Render(formatter.PadRight(m.label, 18)),
				formatter.Dim(m.blurb),
			))
		}

	case phaseForm:
		b.WriteString(v.form.View())

	case phaseRunning:
		b.WriteString("  " + formatter.Dim("Generating..."))

	case phaseResult:
		b.WriteString(v.result + "\n\n")
		b.WriteString(formatter.Dim("  enter: run again  esc: back"))
	}

	return b.String()
}
