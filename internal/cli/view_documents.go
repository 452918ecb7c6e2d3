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

type documentsLoadedMsg struct {
	documents []domain.Document
	err       error
}

// documentsView lists the document browser.
type documentsView struct {
	state     *SharedState
	loading   bool
	err       error
	documents []domain.Document
	cursor    int
}

func newDocumentsView(state *SharedState) *documentsView {
	return &documentsView{state: state, loading: true}
}

func (v *documentsView) ID() ViewID    { return ViewDocuments }
func (v *documentsView) Title() string { return "Documents" }

func (v *documentsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
	}
}

func (v *documentsView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		documents, err := app.Directory.Documents(context.Background())
		return documentsLoadedMsg{documents: documents, err: err}
	}
}

func (v *documentsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentsLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.documents = msg.documents
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.documents)-1 {
				v.cursor++
			}
		}
	}

	return v, nil
}

func docTypeStyle(docType string) string {
	switch docType {
	case "PDF":
		return formatter.StyleRed.Render("PDF")
	case "XLS":
		return formatter.StyleGreen.Render("XLS")
	case "DOC":
		return formatter.StyleBlue.Render("DOC")
	case "IMG":
		return formatter.StylePurple.Render("IMG")
	default:
		return formatter.Dim(docType)
	}
}

func (v *documentsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, d := range v.documents {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
			cursor,
			docTypeStyle(d.Type),
			nameStyle.Render(formatter.PadRight(d.Name, 36)),
			formatter.Dim(formatter.PadRight(d.Size, 8)),
			formatter.Dim(d.Date),
		))
	}
	return b.String()
}
