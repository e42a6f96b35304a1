package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo-iq/internal/domain"
)

// Colors defines the color palette shared by the prompt and the CLI tables.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Status colors
	Due      lipgloss.Color
	Overdue  lipgloss.Color
	Asleep   lipgloss.Color
	Finished lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	Due:      lipgloss.Color("#74B9FF"), // Light blue
	Overdue:  lipgloss.Color("#D63031"), // Red
	Asleep:   lipgloss.Color("#A29BFE"), // Lavender
	Finished: lipgloss.Color("#00B894"), // Green
}

// Styles contains the lipgloss styles used by todo-iq output.
type Styles struct {
	// Listing
	Header    lipgloss.Style
	Frequency lipgloss.Style
	Muted     lipgloss.Style

	// Status badges
	StatusDue      lipgloss.Style
	StatusOverdue  lipgloss.Style
	StatusAsleep   lipgloss.Style
	StatusFinished lipgloss.Style

	// Confirm dialog
	Dialog         lipgloss.Style
	DialogTitle    lipgloss.Style
	DialogPrompt   lipgloss.Style
	Choice         lipgloss.Style
	ChoiceSelected lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Frequency: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatusDue: lipgloss.NewStyle().
			Foreground(Colors.Due),

		StatusOverdue: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Overdue),

		StatusAsleep: lipgloss.NewStyle().
			Italic(true).
			Foreground(Colors.Asleep),

		StatusFinished: lipgloss.NewStyle().
			Foreground(Colors.Finished),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Padding(0, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Choice: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		ChoiceSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Colors.Primary).
			Padding(0, 1),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// StatusStyle returns the badge style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusDue:
		return s.StatusDue
	case domain.StatusOverdue:
		return s.StatusOverdue
	case domain.StatusAsleep:
		return s.StatusAsleep
	case domain.StatusFinished:
		return s.StatusFinished
	default:
		return s.Muted
	}
}

// StatusBadge renders the display name of a status in its color.
func (s Styles) StatusBadge(status domain.Status) string {
	return s.StatusStyle(status).Render(status.Display())
}

// StatusIcon returns the icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusDue:
		return "○"
	case domain.StatusOverdue:
		return "!"
	case domain.StatusAsleep:
		return "z"
	case domain.StatusFinished:
		return "✓"
	default:
		return "?"
	}
}
