package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kgraph/internal/adapters/tui/styles"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Yank   key.Binding
	Search key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/inspect"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank id"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type rowKind int

const (
	rowDomain rowKind = iota
	rowNode
)

// browserRow is one display line: a domain header or a node under an
// expanded domain.
type browserRow struct {
	kind   rowKind
	domain domain.DomainInfo
	node   domain.NodeIndex
}

// BrowserModel is the model for the domain browser view
type BrowserModel struct {
	ViewState
	store ports.Store

	domains  []domain.DomainInfo
	nodes    map[string][]domain.NodeIndex // exact domain name -> loaded nodes
	expanded map[string]bool
	rows     []browserRow
	cursor   int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store ports.Store) *BrowserModel {
	return &BrowserModel{
		store:    store,
		nodes:    make(map[string][]domain.NodeIndex),
		expanded: make(map[string]bool),
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadDomains
}

func (m *BrowserModel) loadDomains() tea.Msg {
	domains, err := m.store.DomainList()
	if err != nil {
		return errMsg{err}
	}
	return domainsLoadedMsg{domains}
}

type domainsLoadedMsg struct {
	domains []domain.DomainInfo
}

type nodesLoadedMsg struct {
	name  string
	nodes []domain.NodeIndex
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case domainsLoadedMsg:
		m.domains = msg.domains
		m.refreshRows()
		return m, nil

	case nodesLoadedMsg:
		m.nodes[msg.name] = msg.nodes
		m.refreshRows()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if row := m.selectedRow(); row != nil {
				switch row.kind {
				case rowDomain:
					if m.expanded[row.domain.Name] {
						m.expanded[row.domain.Name] = false
						m.refreshRows()
					}
				case rowNode:
					// Jump back to the owning domain header
					for i := m.cursor; i >= 0; i-- {
						if m.rows[i].kind == rowDomain {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
			if row := m.selectedRow(); row != nil {
				switch row.kind {
				case rowDomain:
					name := row.domain.Name
					if m.expanded[name] {
						if key.Matches(msg, BrowserKeys.Enter) {
							m.expanded[name] = false
							m.refreshRows()
						}
						return m, nil
					}
					m.expanded[name] = true
					if _, loaded := m.nodes[name]; loaded {
						m.refreshRows()
						return m, nil
					}
					return m, m.loadDomainNodes(name)
				case rowNode:
					id := row.node.ID
					return m, func() tea.Msg {
						return SwitchToInspectMsg{ID: id}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Yank):
			if row := m.selectedRow(); row != nil && row.kind == rowNode {
				clipboard.WriteAll(row.node.ID)
				m.SetMessage(fmt.Sprintf("Copied %s", row.node.ID), false)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Search):
			return m, func() tea.Msg {
				return SwitchToSearchMsg{}
			}

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) loadDomainNodes(name string) tea.Cmd {
	return func() tea.Msg {
		// The empty domain displays as its distinguished bucket name.
		query := name
		if name == domain.UnassignedDomain {
			query = ""
		}
		all, err := m.store.NodeIndexByDomain(query)
		if err != nil {
			return errMsg{err}
		}
		// NodeIndexByDomain selects the whole subtree; the browser row
		// lists only the exact domain.
		exact := make([]domain.NodeIndex, 0, len(all))
		for _, n := range all {
			if n.Domain == query {
				exact = append(exact, n)
			}
		}
		return nodesLoadedMsg{name: name, nodes: exact}
	}
}

func (m *BrowserModel) selectedRow() *browserRow {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return &m.rows[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshRows() {
	m.rows = m.rows[:0]
	for _, d := range m.domains {
		name := domain.DisplayName(d.Name)
		info := d
		info.Name = name
		m.rows = append(m.rows, browserRow{kind: rowDomain, domain: info})
		if m.expanded[name] {
			for _, n := range m.nodes[name] {
				m.rows = append(m.rows, browserRow{kind: rowNode, node: n})
			}
		}
	}
	// Clamp cursor
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.domains == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("kgraph"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Knowledge Graph Browser"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("The graph is empty"))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		b.WriteString(m.renderRow(row, i == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderRow(row browserRow, selected bool) string {
	switch row.kind {
	case rowDomain:
		var prefix string
		if m.expanded[row.domain.Name] {
			prefix = styles.TreeExpanded
		} else {
			prefix = styles.TreeCollapsed
		}
		// Indent by dot depth so sub-domains nest under their root.
		depth := strings.Count(row.domain.Name, ".")
		indent := strings.Repeat("  ", depth)
		text := fmt.Sprintf("%s (%d)", row.domain.Name, row.domain.Count)
		if selected {
			return indent + styles.TreeBranch.Render(prefix) + styles.RowSelected.Render(text)
		}
		return indent + styles.TreeBranch.Render(prefix) + styles.RowDomain.Render(text)

	default:
		depth := strings.Count(domain.DisplayName(row.node.Domain), ".") + 1
		indent := strings.Repeat("  ", depth)
		text := fmt.Sprintf("%s [%s/%s]", row.node.ID, row.node.Type, row.node.Status)
		if selected {
			return indent + styles.TreeLeaf + styles.RowSelected.Render(text)
		}
		styled := styles.RowNode.Foreground(styles.StatusColor(row.node.Status))
		return indent + styles.TreeLeaf + styled.Render(text)
	}
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"h/l", "collapse/expand"},
		{"enter", "inspect"},
		{"y", "yank id"},
		{"/", "search"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload reloads the domain list; loaded node lists are refetched on
// the next expand.
func (m *BrowserModel) Reload() tea.Cmd {
	m.nodes = make(map[string][]domain.NodeIndex)
	m.rows = nil
	m.cursor = 0
	return m.loadDomains
}
