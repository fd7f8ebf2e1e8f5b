package expression

import (
	"regexp"
	"slices"
	"strings"
)

// RecognizedVariables lists every runtime variable the expression
// language exposes, in documentation order. The set is fixed: custom or
// community helpers are not recognized.
var RecognizedVariables = []string{
	"$json",
	"$node",
	"$input",
	"$items",
	"$workflow",
	"$execution",
	"$now",
	"$today",
	"$itemIndex",
	"$runIndex",
	"$env",
	"$prevNode",
	"$parameter",
}

var (
	// variableTokenRegex matches a full $-prefixed identifier. Matching
	// whole tokens and filtering against RecognizedVariables keeps
	// boundaries honest: $itemIndex never half-matches as $items, and
	// $inputData is not $input.
	variableTokenRegex = regexp.MustCompile(`\$[a-zA-Z_][a-zA-Z0-9_]*`)

	// nodeRefRegex matches $node["Name"] and $node['Name'].
	nodeRefRegex = regexp.MustCompile(`\$node\[\s*(?:"([^"]+)"|'([^']+)')\s*\]`)

	// itemsRefRegex matches the node-name argument of $items("Name", ...).
	itemsRefRegex = regexp.MustCompile(`\$items\(\s*(?:"([^"]+)"|'([^']+)')`)
)

// bareVariableAlternation is the recognized variable names without their
// $ prefix, joined for use inside the missing-prefix pattern.
var bareVariableAlternation = func() string {
	names := make([]string, len(RecognizedVariables))
	for i, v := range RecognizedVariables {
		names[i] = strings.TrimPrefix(v, "$")
	}
	return strings.Join(names, "|")
}()

// recognizedTokens returns every recognized variable token in text, in
// order of appearance, duplicates included.
func recognizedTokens(text string) []string {
	var tokens []string
	for _, token := range variableTokenRegex.FindAllString(text, -1) {
		if slices.Contains(RecognizedVariables, token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// nodeReferences returns the node names referenced in text, $node[...]
// references first, then $items(...) references, duplicates included.
func nodeReferences(text string) []string {
	var names []string
	for _, m := range nodeRefRegex.FindAllStringSubmatch(text, -1) {
		names = append(names, quotedGroup(m))
	}
	for _, m := range itemsRefRegex.FindAllStringSubmatch(text, -1) {
		names = append(names, quotedGroup(m))
	}
	return names
}

// quotedGroup picks whichever quoting style captured the name.
func quotedGroup(m []string) string {
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}
