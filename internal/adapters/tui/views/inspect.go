package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kgraph/internal/adapters/tui/styles"
	"kgraph/internal/application/commands"
	"kgraph/internal/ports"
)

// InspectKeyMap defines key bindings for the inspect view
type InspectKeyMap struct {
	Yank key.Binding
	Back key.Binding
	Quit key.Binding
}

var InspectKeys = InspectKeyMap{
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank id"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "h"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// InspectModel shows a single node with its one-hop neighborhood.
type InspectModel struct {
	ViewState
	store ports.Store

	id     string
	result *commands.NeighborhoodResult
}

// NewInspectModel creates a new inspect view model
func NewInspectModel(store ports.Store) *InspectModel {
	return &InspectModel{store: store}
}

// Init initializes the inspect view
func (m *InspectModel) Init() tea.Cmd {
	return nil
}

// Load points the view at a node and fetches its neighborhood.
func (m *InspectModel) Load(id string) tea.Cmd {
	m.id = id
	m.result = nil
	m.ClearMessage()
	return func() tea.Msg {
		result, err := commands.NewNeighborhoodCommand(m.store, id, 1).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return neighborhoodLoadedMsg{result}
	}
}

type neighborhoodLoadedMsg struct {
	result *commands.NeighborhoodResult
}

// Update handles messages for the inspect view
func (m *InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case neighborhoodLoadedMsg:
		m.result = msg.result
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, InspectKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, InspectKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, InspectKeys.Yank):
			clipboard.WriteAll(m.id)
			m.SetMessage(fmt.Sprintf("Copied %s", m.id), false)
			return m, nil
		}
	}

	return m, nil
}

// View renders the inspect view
func (m *InspectModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Inspect"))
	b.WriteString("\n\n")

	if m.Message != "" && m.MessageErr {
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		return styles.App.Render(b.String())
	}

	if m.result == nil {
		b.WriteString("Loading...")
		return styles.App.Render(b.String())
	}

	n := m.result.Node
	b.WriteString(styles.NodeID.Render(n.ID))
	b.WriteString("  ")
	b.WriteString(styles.NodeType.Render(fmt.Sprintf("[%s/%s]", n.Type, n.Status)))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(n.Domain))
	b.WriteString("\n\n")

	if n.Summary != "" {
		b.WriteString(n.Summary)
		b.WriteString("\n\n")
	}
	if n.KaiNote != "" {
		b.WriteString(styles.Subtitle.Render(n.KaiNote))
		b.WriteString("\n\n")
	}

	if len(m.result.Edges) > 0 {
		b.WriteString(styles.InputLabel.Render("Edges"))
		b.WriteString("\n")
		for _, e := range m.result.Edges {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				e.Source,
				styles.Relation.Render("-"+e.Relation+"->"),
				e.Target,
			))
		}
		b.WriteString("\n")
	}

	if len(m.result.Neighbors) > 0 {
		b.WriteString(styles.InputLabel.Render("Neighbors"))
		b.WriteString("\n")
		for id, neighbor := range m.result.Neighbors {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.NodeID.Render(id),
				styles.MutedText.Render(neighbor.Summary),
			))
		}
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString(styles.Success.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("y"),
		styles.HelpDesc.Render("yank id"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
		styles.HelpKey.Render("q"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}
