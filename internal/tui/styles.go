package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles holds the lipgloss styles used by the shell view.
type Styles struct {
	Prompt  lipgloss.Style
	Command lipgloss.Style
	Output  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	Title   lipgloss.Style // session banner
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Command: lipgloss.NewStyle().Foreground(ColorSecondary),
		Output:  lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle().Foreground(ColorError),
		Help:    lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Prompt: plain, Command: plain, Output: plain, Error: plain, Help: plain, Title: plain}
}
