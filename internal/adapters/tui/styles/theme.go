package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Status colors
	StatusSeed     = lipgloss.Color("#6B7280") // Gray
	StatusExplored = lipgloss.Color("#60A5FA") // Blue
	StatusDeep     = lipgloss.Color("#8B5CF6") // Violet
	StatusVerified = lipgloss.Color("#10B981") // Green
	StatusArchived = lipgloss.Color("#374151") // Dark gray

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Row styles
	RowDomain = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	RowNode = lipgloss.NewStyle()

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Node detail styles
	NodeID = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	NodeType = lipgloss.NewStyle().
			Foreground(Warning)

	Relation = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// StatusColor returns the color for a node status
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "seed":
		return StatusSeed
	case "explored":
		return StatusExplored
	case "deep":
		return StatusDeep
	case "verified":
		return StatusVerified
	case "archived":
		return StatusArchived
	default:
		return Primary
	}
}
