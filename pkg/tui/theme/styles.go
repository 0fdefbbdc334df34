package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Base16 color palette with orange, brown, yellow, and pink tones
// Based on Autumn theme with warm earth tones
var (
	// Base colors (backgrounds and text)
	ColorBase00 = lipgloss.Color("#1a1816") // Dark background
	ColorBase01 = lipgloss.Color("#282420") // Lighter background
	ColorBase02 = lipgloss.Color("#36302a") // Selection background
	ColorBase03 = lipgloss.Color("#5c5044") // Comments, invisibles
	ColorBase04 = lipgloss.Color("#83715f") // Dark foreground
	ColorBase05 = lipgloss.Color("#ab937b") // Default foreground
	ColorBase06 = lipgloss.Color("#d3b597") // Light foreground
	ColorBase07 = lipgloss.Color("#f5d7b9") // Lightest foreground

	// Accent colors
	ColorRed    = lipgloss.Color("#d95f5f") // Errors
	ColorOrange = lipgloss.Color("#eb8755") // Focus, highlights
	ColorYellow = lipgloss.Color("#f5b761") // Warnings, emphasis
	ColorGreen  = lipgloss.Color("#93b56b") // User messages
	ColorCyan   = lipgloss.Color("#61afaf") // Reasoning, info
	ColorBlue   = lipgloss.Color("#6b93b5") // Assistant messages
	ColorPurple = lipgloss.Color("#976bb5") // Links

	// UI specific colors
	ColorBorder = ColorBase03
	ColorFocus  = ColorOrange
	ColorError  = ColorRed
	ColorMuted  = ColorBase03
)

// Styles defines the Lipgloss styles for the TUI components
type Styles struct {
	// Message styles
	UserMessage      lipgloss.Style
	AssistantMessage lipgloss.Style
	Reasoning        lipgloss.Style
	Emphasis         lipgloss.Style
	ErrorMessage     lipgloss.Style

	// Search result card styles
	CardTitle    lipgloss.Style
	CardBody     lipgloss.Style
	CardMeta     lipgloss.Style
	CardLink     lipgloss.Style
	CategoryName lipgloss.Style

	// Status bar styles
	StatusBar  lipgloss.Style
	StatusText lipgloss.Style
	SearchOn   lipgloss.Style
	SearchOff  lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles
func DefaultStyles() *Styles {
	return &Styles{
		UserMessage: lipgloss.NewStyle().
			Foreground(ColorGreen),

		AssistantMessage: lipgloss.NewStyle().
			Foreground(ColorBlue),

		Reasoning: lipgloss.NewStyle().
			Foreground(ColorCyan).
			Italic(true),

		Emphasis: lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true),

		ErrorMessage: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		CardTitle: lipgloss.NewStyle().
			Foreground(ColorBase07).
			Bold(true),

		CardBody: lipgloss.NewStyle().
			Foreground(ColorBase05),

		CardMeta: lipgloss.NewStyle().
			Foreground(ColorBase04),

		CardLink: lipgloss.NewStyle().
			Foreground(ColorPurple).
			Underline(true),

		CategoryName: lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(ColorBase01).
			Padding(0, 1),

		StatusText: lipgloss.NewStyle().
			Foreground(ColorBase05),

		SearchOn: lipgloss.NewStyle().
			Foreground(ColorGreen),

		SearchOff: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}
