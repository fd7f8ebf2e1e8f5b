// Package console renders styled terminal messages and plain-text tables
// for the flowlint CLI. Styling is handled by lipgloss and degrades to
// plain text when the stream is not a terminal or NO_COLOR is set.
package console

import (
	"strings"

	"github.com/flowlint/flowlint/pkg/styles"
)

const (
	symbolError   = "✗"
	symbolWarning = "⚠"
	symbolSuccess = "✓"
	symbolInfo    = "ℹ"
)

// FormatErrorMessage renders an error line with the ✗ marker.
func FormatErrorMessage(message string) string {
	return styles.ErrorStyle.Render(symbolError + " " + message)
}

// FormatWarningMessage renders a warning line with the ⚠ marker.
func FormatWarningMessage(message string) string {
	return styles.WarningStyle.Render(symbolWarning + " " + message)
}

// FormatSuccessMessage renders a success line with the ✓ marker.
func FormatSuccessMessage(message string) string {
	return styles.SuccessStyle.Render(symbolSuccess + " " + message)
}

// FormatInfoMessage renders an informational line with the ℹ marker.
func FormatInfoMessage(message string) string {
	return styles.InfoStyle.Render(symbolInfo + " " + message)
}

// FormatProgressMessage renders a transient progress note, used by watch
// mode between validation runs.
func FormatProgressMessage(message string) string {
	return styles.MutedStyle.Render("… " + message)
}

// FormatErrorWithSuggestions renders an error followed by indented
// follow-up suggestions, one per line.
func FormatErrorWithSuggestions(message string, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(FormatErrorMessage(message))
	for _, suggestion := range suggestions {
		sb.WriteString("\n  ")
		sb.WriteString(styles.MutedStyle.Render("• " + suggestion))
	}
	return sb.String()
}
