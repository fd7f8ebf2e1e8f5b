// Package styles defines the shared lipgloss colors and text styles for
// flowlint's console output.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors pick a readable variant for light and dark terminals.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "124", Dark: "203"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "28", Dark: "78"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "25", Dark: "75"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "243", Dark: "245"}
)

var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	TitleStyle   = lipgloss.NewStyle().Bold(true)
)
