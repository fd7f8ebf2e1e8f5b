package expression

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/flowlint/flowlint/pkg/logger"
)

var validateLog = logger.New("expression:validate")

const (
	exprOpen  = "{{"
	exprClose = "}}"
)

var (
	// exprBlockRegex captures the inner content of each complete
	// expression block, across newlines.
	exprBlockRegex = regexp.MustCompile(`(?s)\{\{(.*?)\}\}`)

	// bracketPropRegex matches single-quoted bracket property access,
	// the form the dot-notation warning is about.
	bracketPropRegex = regexp.MustCompile(`\[\s*'[^']*'\s*\]`)

	// missingPrefixRegex matches a recognized variable name used bare,
	// with a property access but without its $ prefix. The name must not
	// follow $, a word character or a dot, so $json.x and payload.json.x
	// stay quiet while json.x is flagged.
	missingPrefixRegex = regexp.MustCompile(`(^|[^$.\w])(` + bareVariableAlternation + `)\s*\.`)
)

// Validate statically checks one parameter text. Text without expression
// markers is valid and uses nothing; otherwise every complete {{ }}
// block is checked and usage is extracted from the whole text regardless
// of which checks fired. The returned Result is never nil and a nil
// Context behaves like the zero Context.
func Validate(text string, ctx *Context) *Result {
	if ctx == nil {
		ctx = &Context{}
	}
	result := NewResult()

	if !strings.Contains(text, exprOpen) && !strings.Contains(text, exprClose) {
		return result
	}

	checkBracketBalance(text, result)
	checkNesting(text, result)

	for _, match := range exprBlockRegex.FindAllStringSubmatch(text, -1) {
		inner := strings.TrimSpace(match[1])
		if inner == "" {
			result.Errors = append(result.Errors, "Empty expression found")
			continue
		}
		checkBlockSyntax(inner, result)
		checkContextUse(inner, ctx, result)
		checkNodeReferences(inner, ctx, result)
	}

	collectUsage(text, result)

	result.Valid = len(result.Errors) == 0
	if !result.Valid {
		validateLog.Printf("invalid expression: errors=%d warnings=%d", len(result.Errors), len(result.Warnings))
	}
	return result
}

// checkBracketBalance records an error when the {{ and }} markers do not
// pair up.
func checkBracketBalance(text string, result *Result) {
	if strings.Count(text, exprOpen) != strings.Count(text, exprClose) {
		result.Errors = append(result.Errors, "Unmatched expression brackets {{ }}")
	}
}

// checkNesting rejects a second {{ opening before the final }} closes.
// The check is deliberately coarse: sibling blocks in one string, as in
// "{{a}} {{b}}", are reported the same way as true nesting.
func checkNesting(text string, result *Result) {
	first := strings.Index(text, exprOpen)
	if first == -1 {
		return
	}
	rest := text[first+len(exprOpen):]
	nextOpen := strings.Index(rest, exprOpen)
	lastClose := strings.LastIndex(rest, exprClose)
	if nextOpen != -1 && lastClose != -1 && nextOpen < lastClose {
		result.Errors = append(result.Errors, "Nested expressions are not supported")
	}
}

// checkBlockSyntax runs the per-block pattern checks that do not depend
// on the validation context.
func checkBlockSyntax(inner string, result *Result) {
	if strings.Contains(inner, "${") {
		result.Errors = append(result.Errors,
			"Template literals ${} are not supported in expressions - use {{ }} syntax instead")
	}
	if strings.Contains(inner, "?.") {
		result.Warnings = append(result.Warnings,
			"Optional chaining (?.) is not supported in expressions - use conditional checks instead")
	}
	if bracketPropRegex.MatchString(inner) {
		result.Warnings = append(result.Warnings,
			"Consider using dot notation instead of bracket notation for property access")
	}
	for _, name := range missingPrefixNames(inner) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Possible missing $ prefix: %q should be %q", name, "$"+name))
	}
}

// missingPrefixNames returns the recognized variable names appearing in
// inner as bare identifiers with a property access, each name once.
func missingPrefixNames(inner string) []string {
	var names []string
	for _, m := range missingPrefixRegex.FindAllStringSubmatch(inner, -1) {
		if name := m[2]; !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// checkContextUse applies the input-data rules. $input reads the items
// of the incoming connection, so it cannot work without one; $json is
// tolerated with a warning because loop iterations may supply items
// later.
func checkContextUse(inner string, ctx *Context, result *Result) {
	if ctx.HasInputData {
		return
	}
	tokens := recognizedTokens(inner)
	if slices.Contains(tokens, "$input") {
		result.Errors = append(result.Errors, "$input is only available when the node has input data")
	}
	if !ctx.IsInLoop && slices.Contains(tokens, "$json") {
		result.Warnings = append(result.Warnings, "Using $json but node might not have input data")
	}
}

// checkNodeReferences verifies that every $node["..."] and $items("...")
// reference in the block points at a node that exists.
func checkNodeReferences(inner string, ctx *Context, result *Result) {
	for _, name := range nodeReferences(inner) {
		if slices.Contains(ctx.AvailableNodes, name) {
			continue
		}
		message := fmt.Sprintf("Referenced node %q not found in workflow", name)
		if suggestion, ok := closestName(name, ctx.AvailableNodes); ok {
			message += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		result.Errors = append(result.Errors, message)
	}
}

// collectUsage extracts variable and node usage from the whole text,
// deduplicated in first-seen order.
func collectUsage(text string, result *Result) {
	for _, token := range recognizedTokens(text) {
		if !slices.Contains(result.UsedVariables, token) {
			result.UsedVariables = append(result.UsedVariables, token)
		}
	}
	for _, name := range nodeReferences(text) {
		if !slices.Contains(result.UsedNodes, name) {
			result.UsedNodes = append(result.UsedNodes, name)
		}
	}
}
