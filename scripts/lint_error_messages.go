package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// StyleIssue represents a style issue with an error message.
type StyleIssue struct {
	File       string
	Line       int
	Issue      string
	Suggestion string
}

// FileStats tracks statistics for a single file.
type FileStats struct {
	Total     int
	Compliant int
	Issues    []StyleIssue
}

var (
	// Interpolated string values must be quoted so empty or whitespace
	// values stay visible in the output: '%s', not a bare %s.
	unquotedVerb = regexp.MustCompile(`(^|[^'])%s($|[^'])`)

	// Wrapping verb. Errors that describe a failed operation must carry
	// the underlying cause for errors.Is / errors.As.
	wrapsCause = regexp.MustCompile(`%w`)
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-test" {
		// Test mode - used by tests
		os.Exit(0)
	}

	fmt.Println("🔍 Error Message Style Linter")
	fmt.Println()

	// Parse directories
	dirs := []string{"pkg/expression", "pkg/workflow", "pkg/cli"}

	allStats := make(map[string]*FileStats)
	totalMessages := 0
	totalCompliant := 0

	for _, dir := range dirs {
		fmt.Printf("Analyzing error messages in %s/...\n", dir)

		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() && strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go") {
				stats := analyzeFile(path)
				if stats.Total > 0 {
					allStats[path] = stats
					totalMessages += stats.Total
					totalCompliant += stats.Compliant
				}
			}

			return nil
		})

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error walking directory %s: %v\n", dir, err)
			os.Exit(1)
		}
	}

	fmt.Println()

	// Print file-by-file results
	sortedFiles := make([]string, 0, len(allStats))
	for file := range allStats {
		sortedFiles = append(sortedFiles, file)
	}
	sort.Strings(sortedFiles)

	issueCount := 0
	for _, file := range sortedFiles {
		stats := allStats[file]
		compliance := 0
		if stats.Total > 0 {
			compliance = (stats.Compliant * 100) / stats.Total
		}

		if len(stats.Issues) == 0 {
			fmt.Printf("✓ %s: %d/%d compliant (100%%)\n", file, stats.Compliant, stats.Total)
		} else {
			fmt.Printf("✗ %s: %d/%d compliant (%d%%)\n", file, stats.Compliant, stats.Total, compliance)

			// Show first 3 issues per file to avoid overwhelming output
			maxIssues := 3
			for i, issue := range stats.Issues {
				if i >= maxIssues {
					remaining := len(stats.Issues) - maxIssues
					fmt.Printf("  ... and %d more issue(s)\n", remaining)
					break
				}
				fmt.Printf("  - Line %d: %s\n", issue.Line, issue.Issue)
				if issue.Suggestion != "" {
					fmt.Printf("    Suggestion: %s\n", issue.Suggestion)
				}
			}
			issueCount += len(stats.Issues)
		}
	}

	// Print summary
	fmt.Println()
	fmt.Println("📊 Summary:")
	fmt.Printf("  Total error messages: %d\n", totalMessages)
	fmt.Printf("  Compliant: %d (%d%%)\n", totalCompliant, (totalCompliant*100)/max(totalMessages, 1))
	fmt.Printf("  Non-compliant: %d (%d%%)\n", totalMessages-totalCompliant, ((totalMessages-totalCompliant)*100)/max(totalMessages, 1))
	fmt.Printf("  Total issues: %d\n", issueCount)
	fmt.Println()

	// Check threshold
	threshold := 100
	if len(os.Args) > 1 {
		_, err := fmt.Sscanf(os.Args[1], "%d", &threshold)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid threshold value '%s', using default 100%%\n", os.Args[1])
			threshold = 100
		}
	}

	compliancePercentage := (totalCompliant * 100) / max(totalMessages, 1)

	if compliancePercentage >= threshold {
		fmt.Printf("✅ Meets style threshold (%d%%)\n", threshold)
		os.Exit(0)
	} else {
		fmt.Printf("❌ Below style threshold (%d%% < %d%%)\n", compliancePercentage, threshold)
		os.Exit(1)
	}
}

func analyzeFile(path string) *FileStats {
	stats := &FileStats{
		Total:     0,
		Compliant: 0,
		Issues:    []StyleIssue{},
	}

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return stats
	}

	ast.Inspect(node, func(n ast.Node) bool {
		// Look for function calls
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		// Check if it's fmt.Errorf or errors.New
		var isErrorCall bool
		switch fun := call.Fun.(type) {
		case *ast.SelectorExpr:
			// fmt.Errorf, errors.New, etc.
			if ident, ok := fun.X.(*ast.Ident); ok {
				if (ident.Name == "fmt" && fun.Sel.Name == "Errorf") ||
					(ident.Name == "errors" && fun.Sel.Name == "New") {
					isErrorCall = true
				}
			}
		}

		if !isErrorCall || len(call.Args) == 0 {
			return true
		}

		// Extract the error message format string
		var messageStr string
		if lit, ok := call.Args[0].(*ast.BasicLit); ok && lit.Kind == token.STRING {
			// Remove quotes
			messageStr = lit.Value[1 : len(lit.Value)-1]
			// Unescape basic sequences
			messageStr = strings.ReplaceAll(messageStr, "\\n", "\n")
			messageStr = strings.ReplaceAll(messageStr, "\\t", "\t")
			messageStr = strings.ReplaceAll(messageStr, "\\\"", "\"")
		} else {
			// Skip non-literal strings (pre-formatted console messages)
			return true
		}

		stats.Total++

		pos := fset.Position(call.Pos())
		issue := checkMessageStyle(messageStr)

		if issue != nil {
			stats.Issues = append(stats.Issues, StyleIssue{
				File:       path,
				Line:       pos.Line,
				Issue:      issue.Issue,
				Suggestion: issue.Suggestion,
			})
		} else {
			stats.Compliant++
		}

		return true
	})

	return stats
}

func checkMessageStyle(message string) *StyleIssue {
	if message == "" {
		return &StyleIssue{
			Issue:      "Empty error message",
			Suggestion: "Describe the failed operation, e.g. failed to read workflow file: %w",
		}
	}

	// Go error strings are lowercase: callers compose them into larger
	// sentences and the CLI already prints an "Error:" prefix.
	first := []rune(message)[0]
	if unicode.IsUpper(first) {
		return &StyleIssue{
			Issue:      "Error message starts with an uppercase letter",
			Suggestion: "Lowercase the first word; the CLI adds the 'Error:' prefix",
		}
	}

	// Same reason: no terminal punctuation on composable strings.
	if strings.HasSuffix(message, ".") || strings.HasSuffix(message, "!") || strings.HasSuffix(message, "?") {
		return &StyleIssue{
			Issue:      "Error message ends with punctuation",
			Suggestion: "Drop the trailing punctuation so wrapped messages read as one sentence",
		}
	}

	if unquotedVerb.MatchString(message) {
		return &StyleIssue{
			Issue:      "Interpolated value is not quoted",
			Suggestion: "Quote string verbs as '%s' (or use %q) so empty values stay visible",
		}
	}

	if strings.HasPrefix(message, "failed to") && !wrapsCause.MatchString(message) {
		return &StyleIssue{
			Issue:      "Failure message does not wrap its cause",
			Suggestion: "Append ': %w' so callers can unwrap the underlying error",
		}
	}

	return nil
}
