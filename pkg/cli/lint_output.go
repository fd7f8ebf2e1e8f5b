package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/constants"
)

// renderReport writes the report to w in the configured format.
func renderReport(w io.Writer, report *LintReport, config LintConfig) error {
	if config.Format == constants.OutputFormatJSON {
		return renderJSON(w, report)
	}
	renderText(w, report, config.Strict)
	return nil
}

// renderJSON emits the whole report as indented JSON, one object with
// per-file results and the run summary.
func renderJSON(w io.Writer, report *LintReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode lint report: %w", err)
	}
	return nil
}

// renderText writes the human-readable report: one status line per file,
// findings indented beneath it, then a summary line.
func renderText(w io.Writer, report *LintReport, strict bool) {
	for _, file := range report.Files {
		switch {
		case !file.Valid:
			fmt.Fprintln(w, console.FormatErrorMessage(file.File))
		case strict && len(file.Warnings) > 0:
			fmt.Fprintln(w, console.FormatWarningMessage(file.File))
		default:
			fmt.Fprintln(w, console.FormatSuccessMessage(file.File))
		}
		for _, msg := range file.Errors {
			fmt.Fprintf(w, "  %s\n", console.FormatErrorMessage(msg))
		}
		for _, msg := range file.Warnings {
			fmt.Fprintf(w, "  %s\n", console.FormatWarningMessage(msg))
		}
	}
	fmt.Fprintln(w, summaryLine(report.Summary))
}

// summaryLine renders the run totals, styled after the worst finding.
func summaryLine(s LintSummary) string {
	text := fmt.Sprintf("%d workflow %s checked, %d failed, %d %s",
		s.Total, plural("file", s.Total), s.Failed, s.Warnings, plural("warning", s.Warnings))
	switch {
	case s.Failed > 0:
		return console.FormatErrorMessage(text)
	case s.Warnings > 0:
		return console.FormatWarningMessage(text)
	default:
		return console.FormatSuccessMessage(text)
	}
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
