package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - title, links
	ColorHighlight = "205" // Magenta - focused button border
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - secondary copy, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - planned features
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title   lipgloss.Style // Bold accent - page title
	Tagline lipgloss.Style
	Section lipgloss.Style // Section headings
	Normal  lipgloss.Style
	Muted   lipgloss.Style // Secondary copy
	Planned lipgloss.Style // Planned (not shipped) features
	Link    lipgloss.Style
	Hint    lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style

	Button        lipgloss.Style // Unfocused button box
	ButtonFocused lipgloss.Style
	Hotkey        lipgloss.Style // Hotkey annotation inside a button
	Focused       lipgloss.Style // Focused link marker

	Box lipgloss.Style // Overlay box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Tagline: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Planned: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Hotkey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
}
