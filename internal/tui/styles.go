package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used for console output. They are bound
// to a renderer so colour output follows that renderer's profile.
type Styles struct {
	Header     lipgloss.Style
	Replay     lipgloss.Style
	Info       lipgloss.Style
	Player     lipgloss.Style
	Current    lipgloss.Style
	Eliminated lipgloss.Style
	Protected  lipgloss.Style
	Card       lipgloss.Style
	Prompt     lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
}

// NewStyles creates the styles for renderer r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),

		Replay: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		Info: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),

		Player: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),

		Current: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		Eliminated: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Strikethrough(true),

		Protected: r.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true),

		Card: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}
