package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flowlint/flowlint/pkg/styles"
)

// TableConfig describes a table for RenderTable.
type TableConfig struct {
	Title     string
	Headers   []string
	Rows      [][]string
	ShowTotal bool
	TotalRow  []string
}

// RenderTable renders a left-aligned plain-text table. Cell bodies stay
// unstyled so the output can be piped and diffed; only the title carries
// emphasis.
func RenderTable(config TableConfig) string {
	var sb strings.Builder
	if config.Title != "" {
		sb.WriteString(styles.TitleStyle.Render(config.Title))
		sb.WriteString("\n")
	}
	if len(config.Headers) == 0 && len(config.Rows) == 0 {
		return sb.String()
	}

	widths := columnWidths(config)
	if len(config.Headers) > 0 {
		writeRow(&sb, config.Headers, widths)
		writeSeparator(&sb, widths)
	}
	for _, row := range config.Rows {
		writeRow(&sb, row, widths)
	}
	if config.ShowTotal && len(config.TotalRow) > 0 {
		writeSeparator(&sb, widths)
		writeRow(&sb, config.TotalRow, widths)
	}
	return sb.String()
}

// columnWidths computes the display width of every column across the
// headers, rows and total row. lipgloss.Width is used so wide runes and
// emoji are measured correctly.
func columnWidths(config TableConfig) []int {
	var widths []int
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	measure(config.Headers)
	for _, row := range config.Rows {
		measure(row)
	}
	if config.ShowTotal {
		measure(config.TotalRow)
	}
	return widths
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	var line strings.Builder
	for i, cell := range row {
		if i > 0 {
			line.WriteString("  ")
		}
		line.WriteString(cell)
		if pad := widths[i] - lipgloss.Width(cell); pad > 0 {
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	sb.WriteString(strings.TrimRight(line.String(), " "))
	sb.WriteString("\n")
}

func writeSeparator(sb *strings.Builder, widths []int) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	sb.WriteString(strings.Join(parts, "  "))
	sb.WriteString("\n")
}
