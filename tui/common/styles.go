package common

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle styles the terminal title bar.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF2B2B")).
			Padding(1, 2, 0, 1)

	// PromptStyle styles the command prompt marker.
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#33FF33")).
			Bold(true)

	// OutputStyle styles command output text.
	OutputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// ErrorStyle styles error output.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	// AuthorStyle styles post author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6E6E"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// MediaStyle styles media attachment markers.
	MediaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F"))

	// StatsStyle styles the engagement counters line.
	StatsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// HistoryStyle styles previously entered command lines.
	HistoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)
)
